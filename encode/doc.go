// Package encode renders document trees as JSON or YAML text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//	s := encode.MustString(node)
//
// Output is indented JSON by default; EncodeWire selects the compact
// single-line form and EncodeFormat(format.YAMLFormat) YAML. Colors
// apply to JSON output only.
package encode
