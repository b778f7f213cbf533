// Package parse provides JSON parsing support for configuration documents.
package parse

import (
	"fmt"
	"strconv"

	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/token"
)

func Parse(d []byte, opts ...ParseOption) (*doc.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyDoc)
	}
	off := 0
	res, err := parseValue(toks, nil, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w: trailing %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*doc.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *doc.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func endErr(toks []token.Token) error {
	last := &toks[len(toks)-1]
	return fmt.Errorf("%w: premature end of input %s", ErrParse, last.Pos.D.End())
}

func parseValue(toks []token.Token, p *doc.Node, pi *int, opts *parseOpts) (*doc.Node, error) {
	if *pi >= len(toks) {
		return nil, endErr(toks)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if *pi == len(toks)-1 {
			return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, t.Pos)
		}
		pos := t.Pos
		*pi++
		objY := &doc.Node{Type: doc.ObjectType}
		objY.Parent = p
		trackPos(objY, pos, opts)
		return parseObj(toks, objY, pi, opts)
	case token.TLSquare:
		if *pi == len(toks)-1 {
			return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, t.Pos)
		}
		pos := t.Pos
		*pi++
		arrY := &doc.Node{Type: doc.ArrayType}
		arrY.Parent = p
		trackPos(arrY, pos, opts)
		return parseArr(toks, arrY, pi, opts)
	case token.TString:
		pos := t.Pos
		*pi++
		sy := doc.FromString(t.String())
		sy.Parent = p
		trackPos(sy, pos, opts)
		return sy, nil
	case token.TInteger:
		pos := t.Pos
		*pi++
		iy := numberNode(t)
		iy.Parent = p
		trackPos(iy, pos, opts)
		return iy, nil
	case token.TFloat:
		pos := t.Pos
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number (%w) %s", ErrParse, err, t.Pos)
		}
		fy := doc.FromFloat(f)
		fy.Number = string(t.Bytes)
		fy.Parent = p
		trackPos(fy, pos, opts)
		return fy, nil
	case token.TTrue:
		pos := t.Pos
		*pi++
		b := doc.FromBool(true)
		b.Parent = p
		trackPos(b, pos, opts)
		return b, nil
	case token.TFalse:
		pos := t.Pos
		*pi++
		b := doc.FromBool(false)
		b.Parent = p
		trackPos(b, pos, opts)
		return b, nil
	case token.TNull:
		pos := t.Pos
		*pi++
		res := doc.Null()
		res.Parent = p
		trackPos(res, pos, opts)
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s (%s)",
			ErrParse, string(t.Bytes), t.Pos, t.Type)
	}
}

// numberNode keeps integers as int64 when they fit, falling back to
// float64, and to the raw literal beyond that.
func numberNode(t *token.Token) *doc.Node {
	i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err == nil {
		n := doc.FromInt(i)
		n.Number = string(t.Bytes)
		return n
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err == nil {
		n := doc.FromFloat(f)
		n.Number = string(t.Bytes)
		return n
	}
	return &doc.Node{Type: doc.NumberType, Number: string(t.Bytes)}
}

func parseObj(toks []token.Token, p *doc.Node, pi *int, opts *parseOpts) (*doc.Node, error) {
	kvs := []doc.KeyVal{}
	for *pi < len(toks) {
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRCurl:
			*pi++
			return doc.FromKeyValsAt(p, kvs), nil
		case token.TString:
			// duplicate keys are well-formed JSON; Get returns the
			// first occurrence, as the original loader did.
			key := doc.FromString(tok.String())
			trackPos(key, tok.Pos, opts)
			*pi++
			if *pi == len(toks) {
				return nil, endErr(toks)
			}
			colTok := &toks[*pi]
			if colTok.Type != token.TColon {
				return nil, fmt.Errorf("%w: expected ':' after key %q, got %q %s",
					ErrParse, key.String, string(colTok.Bytes), colTok.Pos)
			}
			*pi++
			val, err := parseValue(toks, p, pi, opts)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, doc.KeyVal{Key: key, Val: val})
			more, err := separated(toks, pi, token.TRCurl)
			if err != nil {
				return nil, err
			}
			if !more {
				*pi++
				return doc.FromKeyValsAt(p, kvs), nil
			}
		default:
			return nil, fmt.Errorf("%w: expected object key, got %q %s",
				ErrParse, string(tok.Bytes), tok.Pos)
		}
	}
	return nil, endErr(toks)
}

func parseArr(toks []token.Token, p *doc.Node, pi *int, opts *parseOpts) (*doc.Node, error) {
	for *pi < len(toks) {
		tok := &toks[*pi]
		if tok.Type == token.TRSquare && len(p.Values) == 0 {
			*pi++
			return p, nil
		}
		elt, err := parseValue(toks, p, pi, opts)
		if err != nil {
			return nil, err
		}
		elt.ParentIndex = len(p.Values)
		p.Values = append(p.Values, elt)
		more, err := separated(toks, pi, token.TRSquare)
		if err != nil {
			return nil, err
		}
		if !more {
			*pi++
			return p, nil
		}
	}
	return nil, endErr(toks)
}

// separated consumes the comma between elements, reporting whether
// another element follows or closeType ends the container.
func separated(toks []token.Token, pi *int, closeType token.TokenType) (bool, error) {
	if *pi >= len(toks) {
		return false, endErr(toks)
	}
	tok := &toks[*pi]
	switch tok.Type {
	case closeType:
		return false, nil
	case token.TComma:
		*pi++
		if *pi >= len(toks) {
			return false, endErr(toks)
		}
		next := &toks[*pi]
		if next.Type == closeType {
			return false, fmt.Errorf("%w: trailing comma %s", ErrParse, tok.Pos)
		}
		return true, nil
	default:
		return false, fmt.Errorf("%w: expected ',' or container end, got %q %s",
			ErrParse, string(tok.Bytes), tok.Pos)
	}
}
