// Package token tokenizes JSON configuration text.
//
// Tokens carry byte-offset positions which map to line/column pairs
// and render with a context snippet, so parse errors can point at the
// offending part of a configuration file.
//
// # Related Packages
//
//   - github.com/a-gargiulo/McKenna/parse - Parses tokens into document trees
//   - github.com/a-gargiulo/McKenna/doc - Document tree representation
package token
