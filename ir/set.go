package ir

import (
	"fmt"

	"github.com/crateful/wirecat/debug"
)

// Set assigns value at path in y, which must already carry the final
// field, and returns the minimal diff tree for the edit: the edited
// leaf, an anchor sibling (the parent's id field when present) so a
// partial update still names which list element it targets, and the
// enclosing tags back up to the root.  Filter segments re-wrap as
// single-element arrays on the way up.
func Set(y *Node, path string, value *Node) (*Node, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPathNotFound)
	}
	last := segs[len(segs)-1]
	if last.Filter {
		return nil, fmt.Errorf("%w: %s (path may not end in a filter segment)", ErrPathNotFound, path)
	}
	if value == nil {
		value = Null()
	}
	parent := y
	if len(segs) > 1 {
		parent, err = getWorker(y, segs[:len(segs)-1], path)
		if err != nil {
			return nil, err
		}
	}
	if parent == nil || parent.Type != ObjectType || !parent.Has(last.Name) {
		return nil, fmt.Errorf("%w: %s (%q missing)", ErrPathNotFound, path, last.Name)
	}
	parent.SetField(last.Name, value)
	if debug.Path() {
		debug.Logf("path set %q\n", path)
	}

	diff := Object()
	if last.Name != "id" && parent.Has("id") {
		diff.SetField("id", parent.Get("id").Clone())
	}
	diff.SetField(last.Name, value.Clone())
	cur := diff
	for i := len(segs) - 2; i >= 0; i-- {
		if segs[i].Filter {
			cur = FromSlice([]*Node{cur})
			continue
		}
		wrap := Object()
		wrap.SetField(segs[i].Name, cur)
		cur = wrap
	}
	return cur, nil
}

// MergeDiff folds a newly produced diff into a previously accumulated
// one.  An earlier top-level entry survives a conflicting later one;
// keys only the new diff has are added.
func MergeDiff(old, diff *Node) *Node {
	if old == nil {
		return diff
	}
	if diff == nil {
		return old
	}
	res := diff.Clone()
	for i, f := range old.Fields {
		res.SetField(f, old.Values[i])
	}
	return res
}
