package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/ir"
)

// Record is one remote entity with stable in-process identity.  Its
// data tree loads lazily on first field access; Set accumulates a
// pending diff that Save submits in place of the full data.  After
// Delete every operation fails with ErrRecordDeleted.
type Record struct {
	typ  *EntityType
	id   int
	name string
	sel  Selector
	coll *Collection

	data    *ir.Node
	pending *ir.Node
	deleted bool
}

func (r *Record) ID() int {
	return r.id
}

func (r *Record) Name() string {
	return r.name
}

func (r *Record) Type() *EntityType {
	return r.typ
}

func (r *Record) String() string {
	return r.name
}

// Dirty reports whether a diff is pending.
func (r *Record) Dirty() bool {
	return r.pending != nil
}

func (r *Record) Deleted() bool {
	return r.deleted
}

// Pending returns the accumulated diff tree, or nil.
func (r *Record) Pending() *ir.Node {
	return r.pending
}

func (r *Record) errContext() string {
	if r.sel == ByName {
		return fmt.Sprintf("%s name %q", r.typ.Name, r.name)
	}
	return fmt.Sprintf("%s id %d", r.typ.Name, r.id)
}

func (r *Record) selectorPath() string {
	if r.sel == ByName {
		return r.typ.endpoint() + "/name/" + r.name
	}
	return r.typ.endpoint() + "/id/" + strconv.Itoa(r.id)
}

// Data returns the record's data tree, fetching it on first access.
func (r *Record) Data(ctx context.Context) (*ir.Node, error) {
	if r.deleted {
		return nil, fmt.Errorf("%w: %s", ErrRecordDeleted, r.errContext())
	}
	if r.data == nil {
		if err := r.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return r.data, nil
}

// Refresh re-fetches the data tree and clears any pending diff.
func (r *Record) Refresh(ctx context.Context) error {
	if r.deleted {
		return fmt.Errorf("%w: %s", ErrRecordDeleted, r.errContext())
	}
	if !r.typ.Allows(VerbFetch, r.sel) {
		return fmt.Errorf("%w: fetch %s by %s", ErrUnsupportedOperation, r.typ.Name, r.sel)
	}
	doc, err := r.coll.client.transport.Fetch(ctx, r.selectorPath())
	if err != nil {
		return err
	}
	tree, err := codec.Decode(doc, codec.DecodeHints(r.typ.Hints))
	if err != nil {
		return fmt.Errorf("%s: %w", r.errContext(), err)
	}
	data := tree.Get(r.typ.Singular)
	if data == nil {
		return fmt.Errorf("%w: %s (document has no <%s>)", ErrRecordNotFound, r.errContext(), r.typ.Singular)
	}
	r.data = data
	r.pending = nil
	return nil
}

// Get evaluates a path expression over the record's data.
func (r *Record) Get(ctx context.Context, path string) (*ir.Node, error) {
	data, err := r.Data(ctx)
	if err != nil {
		return nil, err
	}
	v, err := ir.Get(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.errContext(), err)
	}
	return v, nil
}

// Set assigns a value at path in the record's data and folds the edit
// into the pending diff.  Branches of the data the edit does not touch
// never enter the diff.
func (r *Record) Set(ctx context.Context, path string, value *ir.Node) error {
	data, err := r.Data(ctx)
	if err != nil {
		return err
	}
	diff, err := ir.Set(data, path, value)
	if err != nil {
		return fmt.Errorf("%s: %w", r.errContext(), err)
	}
	r.pending = ir.MergeDiff(r.pending, diff)
	return nil
}

// SetString is Set with a scalar value.
func (r *Record) SetString(ctx context.Context, path, value string) error {
	return r.Set(ctx, path, ir.FromString(value))
}

// Save submits the pending diff, or the full data when no diff is
// pending, wrapped in the singular wire tag, then re-fetches the data
// and display name.  On failure the pending diff and cached data stay
// untouched so the caller may retry or inspect.
func (r *Record) Save(ctx context.Context) error {
	if r.deleted {
		return fmt.Errorf("%w: %s", ErrRecordDeleted, r.errContext())
	}
	if !r.typ.Allows(VerbUpdate, r.sel) {
		return fmt.Errorf("%w: update %s by %s", ErrUnsupportedOperation, r.typ.Name, r.sel)
	}
	body, err := r.Data(ctx)
	if err != nil {
		return err
	}
	if r.pending != nil {
		body = r.pending
	}
	wrapped := ir.Object()
	wrapped.SetField(r.typ.Singular, body)
	doc, err := codec.Bytes(wrapped)
	if err != nil {
		return fmt.Errorf("%s: %w", r.errContext(), err)
	}
	if _, err := r.coll.client.transport.Submit(ctx, http.MethodPut, r.selectorPath(), doc); err != nil {
		return err
	}
	r.pending = nil
	if err := r.Refresh(ctx); err != nil {
		return err
	}
	name, err := ir.Get(r.data, r.typ.namePath())
	if err != nil {
		return fmt.Errorf("%s: display name: %w", r.errContext(), err)
	}
	r.name = name.Text()
	return nil
}

// Delete removes the record remotely, evicts it from its collection
// and from the identity registry, and poisons further use.
func (r *Record) Delete(ctx context.Context) error {
	if r.deleted {
		return fmt.Errorf("%w: %s", ErrRecordDeleted, r.errContext())
	}
	if r.sel == ByID && r.id == 0 {
		return fmt.Errorf("%w: delete %s without identity", ErrUnsupportedOperation, r.typ.Name)
	}
	if !r.typ.Allows(VerbDelete, r.sel) {
		return fmt.Errorf("%w: delete %s by %s", ErrUnsupportedOperation, r.typ.Name, r.sel)
	}
	if _, err := r.coll.client.transport.Submit(ctx, http.MethodDelete, r.selectorPath(), nil); err != nil {
		return err
	}
	r.coll.evict(r.id)
	r.coll.client.registry.evict(r.typ, r.id)
	r.deleted = true
	r.data = nil
	r.pending = nil
	return nil
}

// Matches compares the record against another value: a *Record by
// identity, an int by id, a string by id when numeric and by name
// otherwise, and an object node by both its name and id fields.
func (r *Record) Matches(x any) bool {
	switch v := x.(type) {
	case *Record:
		return r == v
	case int:
		return r.id == v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return r.id == n
		}
		return r.name == v
	case *ir.Node:
		if v == nil || v.Type != ir.ObjectType {
			return false
		}
		id := -1
		if n, err := strconv.Atoi(v.Get("id").Text()); err == nil {
			id = n
		}
		return r.name == v.Get("name").Text() && r.id == id
	default:
		return false
	}
}
