package ir

import (
	"fmt"
	"strings"

	"github.com/crateful/wirecat/debug"
)

// Segment is one component of a '/'-separated path.  A filter segment
// has the source form "[field==value]" and narrows an array by an
// equality test on field before the walk continues.
type Segment struct {
	Name   string
	Filter bool
	Value  string
}

func (s Segment) String() string {
	if s.Filter {
		return "[" + s.Name + "==" + s.Value + "]"
	}
	return s.Name
}

// ParsePath splits a path into segments.  Trailing slashes are ignored.
func ParsePath(path string) ([]Segment, error) {
	p := strings.TrimRight(path, "/")
	if p == "" {
		return nil, nil
	}
	parts := strings.Split(p, "/")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty segment in path %q", path)
		}
		if part[0] == '[' && part[len(part)-1] == ']' {
			field, value, ok := strings.Cut(part[1:len(part)-1], "==")
			if !ok {
				return nil, fmt.Errorf("filter segment %q must have the form [field==value]", part)
			}
			segs = append(segs, Segment{Name: field, Filter: true, Value: value})
			continue
		}
		segs = append(segs, Segment{Name: part})
	}
	return segs, nil
}

// Get walks path through y and returns the value it names.  At an
// object the walk descends by field, failing with ErrPathNotFound when
// the field is absent.  At an array a plain segment fans out over every
// element, collecting non-null results into a new array; a filter
// segment narrows the walk to the elements whose field equals the
// filter value.  Returned nodes alias the tree, they are not clones.
func Get(y *Node, path string) (*Node, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if debug.Path() {
		debug.Logf("path get %q (%d segments)\n", path, len(segs))
	}
	if len(segs) == 0 {
		return y, nil
	}
	return getWorker(y, segs, path)
}

func getWorker(y *Node, segs []Segment, path string) (*Node, error) {
	if y == nil {
		y = Null()
	}
	seg := segs[0]
	switch y.Type {
	case ObjectType:
		if !y.Has(seg.Name) {
			return nil, fmt.Errorf("%w: %s (%q missing)", ErrPathNotFound, path, seg.Name)
		}
		v := y.Get(seg.Name)
		if len(segs) == 1 {
			return v, nil
		}
		return getWorker(v, segs[1:], path)
	case ArrayType:
		if seg.Filter {
			return getFiltered(y, seg, segs, path)
		}
		res := &Node{Type: ArrayType}
		for _, item := range y.Values {
			if !item.Has(seg.Name) {
				continue
			}
			next := item.Get(seg.Name)
			if next.IsNull() {
				continue
			}
			if len(segs) > 1 {
				more, err := getWorker(next, segs[1:], path)
				if err != nil {
					return nil, err
				}
				res.Append(more)
				continue
			}
			res.Append(next)
		}
		return res, nil
	default:
		// a scalar ends the walk; remaining segments are ignored
		return y, nil
	}
}

// getFiltered retains only the last matching element's result.
// Existing callers depend on last-match semantics; do not change this
// to first match without confirming against real catalog usage.
func getFiltered(y *Node, seg Segment, segs []Segment, path string) (*Node, error) {
	var res *Node
	matched := false
	for _, item := range y.Values {
		f := item.Get(seg.Name)
		if f == nil || f.Type != StringType || f.String != seg.Value {
			continue
		}
		if len(segs) > 1 {
			more, err := getWorker(item, segs[1:], path)
			if err != nil {
				return nil, err
			}
			res = more
		} else {
			res = item
		}
		matched = true
	}
	if !matched {
		return FromSlice(nil), nil
	}
	return res, nil
}
