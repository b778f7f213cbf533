package libdiff

import (
	"github.com/a-gargiulo/McKenna/doc"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffObject aligns the two field sequences with a text diff over
// rune-mapped field names, then recurses on the values of fields
// present on both sides.
func diffObject(from, to *doc.Node) *doc.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := map[string]*doc.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = makeDiff(from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := Diff(from.Values[fi], to.Values[ti])
				if fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = makeDiff(nil, to.Values[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return doc.FromMap(resMap)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *doc.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
