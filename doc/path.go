package doc

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns a JSONPath-style rendering of this node's position in
// its tree, e.g. "$.geometry.domain_width" or "$.samples[3]".
func (node *Node) Path() string {
	if node.Parent == nil {
		return "$"
	}
	switch node.Parent.Type {
	case ObjectType:
		return node.Parent.Path() + "." + node.ParentField
	case ArrayType:
		return node.Parent.Path() + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetPath navigates to the node at path p, where p is a dot-separated
// field path with optional [i] index segments, with or without a
// leading "$.". A nil result with nil error means the path names an
// absent field.
func (node *Node) GetPath(p string) (*Node, error) {
	segs, err := splitPath(p)
	if err != nil {
		return nil, err
	}
	res := node
	for _, seg := range segs {
		if seg.index >= 0 {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array at %s, got %s", res.Path(), res.Type)
			}
			if seg.index >= len(res.Values) {
				return nil, fmt.Errorf("index %d out of bounds at %s (len %d)",
					seg.index, res.Path(), len(res.Values))
			}
			res = res.Values[seg.index]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("expected object at %s, got %s", res.Path(), res.Type)
		}
		res = Get(res, seg.field)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

type pathSeg struct {
	field string
	index int
}

func splitPath(p string) ([]pathSeg, error) {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil, nil
	}
	var segs []pathSeg
	for _, part := range strings.Split(p, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open == -1 {
				if part != "" {
					segs = append(segs, pathSeg{field: part, index: -1})
				}
				break
			}
			if open > 0 {
				segs = append(segs, pathSeg{field: part[:open], index: -1})
			}
			close := strings.IndexByte(part, ']')
			if close < open {
				return nil, fmt.Errorf("malformed path %q", p)
			}
			i, err := strconv.Atoi(part[open+1 : close])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("malformed index in path %q", p)
			}
			segs = append(segs, pathSeg{index: i})
			part = part[close+1:]
			if part == "" {
				break
			}
		}
	}
	return segs, nil
}
