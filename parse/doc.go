// Package parse parses JSON configuration text into document trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"hello": 3.5, "test": 42}`))
//	if err != nil {
//	    return err
//	}
//
// Errors wrap ErrParse and carry the position of the offending token.
//
// # Related Packages
//
//   - github.com/a-gargiulo/McKenna/doc - Document tree representation
//   - github.com/a-gargiulo/McKenna/encode - Encode trees to text
//   - github.com/a-gargiulo/McKenna/token - Tokenization
package parse
