package libdiff

import (
	"github.com/a-gargiulo/McKenna/doc"
)

const (
	FromField = "~from"
	ToField   = "~to"
)

// Diff returns a document describing the differences between from
// and to, or nil when they are equal.
func Diff(from, to *doc.Node) *doc.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return makeDiff(from, to)
	}
	switch from.Type {
	case doc.ObjectType:
		return diffObject(from, to)
	case doc.ArrayType:
		return diffArray(from, to)
	default:
		if doc.Compare(from, to) == 0 {
			return nil
		}
		return makeDiff(from, to)
	}
}

// makeDiff renders a leaf-level difference. Absent sides render as
// null.
func makeDiff(from, to *doc.Node) *doc.Node {
	orNull := func(n *doc.Node) *doc.Node {
		if n == nil {
			return doc.Null()
		}
		return n.Clone()
	}
	return doc.FromKeyVals([]doc.KeyVal{
		{Key: doc.FromString(FromField), Val: orNull(from)},
		{Key: doc.FromString(ToField), Val: orNull(to)},
	})
}

func diffArray(from, to *doc.Node) *doc.Node {
	n := max(len(from.Values), len(to.Values))
	res := make([]*doc.Node, n)
	differs := false
	for i := 0; i < n; i++ {
		var fv, tv *doc.Node
		if i < len(from.Values) {
			fv = from.Values[i]
		}
		if i < len(to.Values) {
			tv = to.Values[i]
		}
		d := Diff(fv, tv)
		if d == nil {
			d = doc.Null()
		} else {
			differs = true
		}
		res[i] = d
	}
	if !differs {
		return nil
	}
	return doc.FromSlice(res)
}
