package parse

import (
	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/token"
)

type parseOpts struct {
	positions map[*doc.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of each parsed node in
// m, for diagnostics that point back into the input.
func ParsePositions(m map[*doc.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
