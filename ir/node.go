package ir

import (
	"maps"
	"slices"
)

// Node is one tree node.  For ObjectType, Fields and Values run in
// parallel and keep wire order; for ArrayType only Values is used; for
// StringType only String is used.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	for _, key := range keys {
		v := m[key]
		if v == nil {
			v = Null()
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, v)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = append(res.Values, vs...)
	return res
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

// Get returns the value of field in object node y, or nil.
func (y *Node) Get(field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Has reports whether object node y carries field, even with a null value.
func (y *Node) Has(field string) bool {
	if y == nil || y.Type != ObjectType {
		return false
	}
	return slices.Contains(y.Fields, field)
}

// SetField assigns field in object node y, appending when absent.
func (y *Node) SetField(field string, v *Node) {
	if v == nil {
		v = Null()
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// DeleteField removes field from object node y, reporting whether it
// was present.
func (y *Node) DeleteField(field string) bool {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Fields = slices.Delete(y.Fields, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return true
		}
	}
	return false
}

// Append adds an element to array node y.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Text returns the scalar text of y, "" for null.
func (y *Node) Text() string {
	if y == nil || y.Type != StringType {
		return ""
	}
	return y.String
}

// IsNull reports whether y is nil or a null node.
func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
