package doc

import (
	"fmt"
	"math"
)

// FromAny converts a decoded generic value (as produced by YAML or
// JSON unmarshalling into any) to a node tree.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 %d overflows", x)
		}
		return FromInt(int64(x)), nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return FromInt(int64(x)), nil
		}
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return FromMap(res), nil
	case map[any]any:
		res := make(map[string]*Node, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v (%T)", k, k)
			}
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[ks] = n
		}
		return FromMap(res), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// ToAny converts a node tree to generic values suitable for
// marshalling with encoding libraries. Object field order is not
// preserved; use the encode package when order matters.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		f, _ := y.Float()
		return f
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
