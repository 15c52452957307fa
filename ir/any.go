package ir

import "fmt"

// ToAny converts a node to plain Go values: nil, string,
// map[string]any, or []any.  Object field order is not preserved.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values into a node.  Scalars are stringified
// the way the wire format carries them.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(x), nil
	case bool:
		if x {
			return FromString("true"), nil
		}
		return FromString("false"), nil
	case int:
		return FromString(fmt.Sprintf("%d", x)), nil
	case int64:
		return FromString(fmt.Sprintf("%d", x)), nil
	case uint64:
		return FromString(fmt.Sprintf("%d", x)), nil
	case float64:
		return FromString(trimFloat(x)), nil
	case []any:
		res := &Node{Type: ArrayType}
		for _, e := range x {
			ye, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(ye)
		}
		return res, nil
	case map[string]any:
		res := FromMapAny(x)
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// FromMapAny converts a map of plain Go values into an object node with
// fields in sorted key order.  Unrepresentable values become null.
func FromMapAny(m map[string]any) *Node {
	nm := make(map[string]*Node, len(m))
	for k, v := range m {
		yv, err := FromAny(v)
		if err != nil {
			yv = Null()
		}
		nm[k] = yv
	}
	return FromMap(nm)
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
