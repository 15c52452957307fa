package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/ir"
)

// Collection is the live view of one entity type's listing.  It caches
// records by id in listing order; Refresh replaces the view wholesale.
type Collection struct {
	typ    *EntityType
	client *Client

	mu      sync.RWMutex
	records map[int]*Record
	order   []int
	loaded  bool
}

func (c *Collection) Type() *EntityType {
	return c.typ
}

// Refresh fetches the listing and rebuilds the collection from it.
// Entries missing the id or name field are skipped with a warning.
func (c *Collection) Refresh(ctx context.Context) error {
	doc, err := c.client.transport.Fetch(ctx, c.typ.endpoint())
	if err != nil {
		return err
	}
	tree, err := codec.Decode(doc, codec.DecodeHints(c.typ.Hints))
	if err != nil {
		return fmt.Errorf("%s listing: %w", c.typ.Name, err)
	}
	listing := tree.Get(c.typ.Plural)
	if listing == nil {
		return fmt.Errorf("%s listing: document has no <%s>", c.typ.Name, c.typ.Plural)
	}

	var entries []*ir.Node
	switch group := listing.Get(c.typ.Singular); {
	case group == nil || group.IsNull():
	case group.Type == ir.ArrayType:
		entries = group.Values
	default:
		entries = []*ir.Node{group}
	}

	records := make(map[int]*Record, len(entries))
	order := make([]int, 0, len(entries))
	for _, entry := range entries {
		idText := entry.Get(c.typ.idField()).Text()
		name := entry.Get(c.typ.nameField())
		id, err := strconv.Atoi(idText)
		if err != nil || name == nil {
			c.client.log.Warn("skipping listing entry without identity",
				zap.String("type", c.typ.Name),
				zap.String(c.typ.idField(), idText))
			continue
		}
		rec := c.client.registry.intern(&Record{
			typ:  c.typ,
			id:   id,
			name: name.Text(),
			sel:  ByID,
			coll: c,
		})
		records[id] = rec
		order = append(order, id)
	}

	c.mu.Lock()
	c.records = records
	c.order = order
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Collection) ensure(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	return c.Refresh(ctx)
}

// ByID returns the record with the given id.
func (c *Collection) ByID(ctx context.Context, id int) (*Record, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	rec := c.records[id]
	c.mu.RUnlock()
	if rec == nil {
		return nil, fmt.Errorf("%w: %s id %d", ErrRecordNotFound, c.typ.Name, id)
	}
	return rec, nil
}

// ByName returns every record with the given name, in listing order.
// Names are not unique on the remote side.
func (c *Collection) ByName(ctx context.Context, name string) ([]*Record, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var res []*Record
	for _, id := range c.order {
		if rec := c.records[id]; rec.name == name {
			res = append(res, rec)
		}
	}
	return res, nil
}

// ByRegex returns every record whose name matches the pattern, in
// listing order.
func (c *Collection) ByRegex(ctx context.Context, pattern string) ([]*Record, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var res []*Record
	for _, id := range c.order {
		if rec := c.records[id]; re.MatchString(rec.name) {
			res = append(res, rec)
		}
	}
	return res, nil
}

// Find resolves key to a single record: an int or numeric string is an
// id, any other string a name.  A name shared by several records is an
// error.
func (c *Collection) Find(ctx context.Context, key any) (*Record, error) {
	switch v := key.(type) {
	case int:
		return c.ByID(ctx, v)
	case string:
		if id, err := strconv.Atoi(v); err == nil {
			return c.ByID(ctx, id)
		}
		matches, err := c.ByName(ctx, v)
		if err != nil {
			return nil, err
		}
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("%w: %s name %q", ErrRecordNotFound, c.typ.Name, v)
		case 1:
			return matches[0], nil
		default:
			return nil, fmt.Errorf("%s name %q matches %d records", c.typ.Name, v, len(matches))
		}
	default:
		return nil, fmt.Errorf("cannot find %s by %T", c.typ.Name, key)
	}
}

// IDs returns the ids in listing order.
func (c *Collection) IDs(ctx context.Context) ([]int, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]int, len(c.order))
	copy(res, c.order)
	return res, nil
}

// Names returns the names in listing order.
func (c *Collection) Names(ctx context.Context) ([]string, error) {
	recs, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(recs))
	for i, rec := range recs {
		res[i] = rec.name
	}
	return res, nil
}

// All returns the records in listing order.
func (c *Collection) All(ctx context.Context) ([]*Record, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]*Record, len(c.order))
	for i, id := range c.order {
		res[i] = c.records[id]
	}
	return res, nil
}

func (c *Collection) Len(ctx context.Context) (int, error) {
	if err := c.ensure(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order), nil
}

// Create submits payload as a new entity and returns the live record
// for the id the remote side assigned.  A nil payload submits the
// type's stub.  The payload must already be wrapped in the singular
// wire tag.
func (c *Collection) Create(ctx context.Context, payload *ir.Node) (*Record, error) {
	if !c.typ.Allows(VerbCreate, ByID) {
		return nil, fmt.Errorf("%w: create %s", ErrUnsupportedOperation, c.typ.Name)
	}
	if payload == nil {
		payload = c.typ.stub()
	}
	doc, err := codec.Bytes(payload)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.typ.Name, err)
	}
	resp, err := c.client.transport.Submit(ctx, http.MethodPost, c.typ.endpoint()+"/id/0", doc)
	if err != nil {
		return nil, err
	}
	tree, err := codec.Decode(resp)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.typ.Name, err)
	}
	idText := tree.Get(c.typ.Singular).Get("id").Text()
	id, err := strconv.Atoi(idText)
	if err != nil {
		return nil, fmt.Errorf("create %s: response has no id", c.typ.Name)
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return c.ByID(ctx, id)
}

// Delete removes the records with the given ids, refreshing the
// listing once at the end.  It stops at the first failure.
func (c *Collection) Delete(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		rec, err := c.ByID(ctx, id)
		if errors.Is(err, ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := rec.Delete(ctx); err != nil {
			return err
		}
	}
	return c.Refresh(ctx)
}

// NameRef returns a record addressed by name rather than id, for
// entity types whose policy permits name selectors.  The record is
// not cached in the identity registry.
func (c *Collection) NameRef(name string) *Record {
	return &Record{
		typ:  c.typ,
		name: name,
		sel:  ByName,
		coll: c,
	}
}

func (c *Collection) evict(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.records[id]; !ok {
		return
	}
	delete(c.records, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
