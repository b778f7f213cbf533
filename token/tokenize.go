package token

import (
	"bytes"
)

// Tokenize appends the tokens of the JSON text src to dst. Returned
// token positions share a single PosDoc over src.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			pd.nl(i)
			i++
		case '{':
			dst = append(dst, one(TLCurl, pd, src, i))
			i++
		case '}':
			dst = append(dst, one(TRCurl, pd, src, i))
			i++
		case '[':
			dst = append(dst, one(TLSquare, pd, src, i))
			i++
		case ']':
			dst = append(dst, one(TRSquare, pd, src, i))
			i++
		case ':':
			dst = append(dst, one(TColon, pd, src, i))
			i++
		case ',':
			dst = append(dst, one(TComma, pd, src, i))
			i++
		case '"':
			off, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			tok := Token{
				Type:  TString,
				Pos:   pd.Pos(i),
				Bytes: src[i : i+off],
			}
			dst = append(dst, tok)
			i += off
		case 't':
			tok, err := literal(TTrue, []byte("true"), pd, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += 4
		case 'f':
			tok, err := literal(TFalse, []byte("false"), pd, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += 5
		case 'n':
			tok, err := literal(TNull, []byte("null"), pd, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += 4
		default:
			if c == '-' || asciiDigit(c) {
				off, isFloat, err := number(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pd.Pos(i))
				}
				tt := TokenType(TInteger)
				if isFloat {
					tt = TFloat
				}
				tok := Token{
					Type:  tt,
					Pos:   pd.Pos(i),
					Bytes: src[i : i+off],
				}
				dst = append(dst, tok)
				i += off
				continue
			}
			return nil, UnexpectedErr(string(src[i:i+1]), pd.Pos(i))
		}
	}
	return dst, nil
}

func one(tt TokenType, pd *PosDoc, src []byte, i int) Token {
	return Token{
		Type:  tt,
		Pos:   pd.Pos(i),
		Bytes: src[i : i+1],
	}
}

func literal(tt TokenType, want []byte, pd *PosDoc, src []byte, i int) (*Token, error) {
	if !bytes.HasPrefix(src[i:], want) {
		return nil, NewTokenizeErr(ErrLiteral, pd.Pos(i))
	}
	end := i + len(want)
	if end < len(src) && literalContinues(src[end]) {
		return nil, NewTokenizeErr(ErrLiteral, pd.Pos(i))
	}
	return &Token{
		Type:  tt,
		Pos:   pd.Pos(i),
		Bytes: src[i:end],
	}, nil
}

func literalContinues(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ':', '{', '}', '[', ']':
		return false
	default:
		return true
	}
}
