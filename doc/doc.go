// Package doc provides the document tree for McKenna configuration files.
//
// # Overview
//
// Configuration documents (whether parsed from JSON text, decoded from
// YAML, or created programmatically) are represented as doc.Node trees.
// The tree is a simple recursive tagged union: values are placed in
// fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := doc.FromString("hello")
//	num := doc.FromFloat(3.5)
//	obj := doc.FromMap(map[string]*doc.Node{
//	    "key": doc.FromString("value"),
//	})
//
// # Constraints
//
// For ObjectType nodes, Fields[i] is the string-typed key for the value
// at Values[i], so there are always as many fields as values. Number
// values are placed under Int64 if integral, Float64 otherwise, with
// the raw literal kept under Number when one was parsed.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField). Use Get for a single field lookup — a nil result means
// the field is absent, which is a normal outcome, not an error. Use
// Path() for a JSONPath-style rendering of a node's location and
// GetPath to navigate to one.
//
// # Thread Safety
//
// Node structures are not thread-safe.
//
// # Related Packages
//
//   - github.com/a-gargiulo/McKenna/parse - Parses text into nodes
//   - github.com/a-gargiulo/McKenna/encode - Encodes nodes to text
//   - github.com/a-gargiulo/McKenna/config - Schema layer over nodes
package doc
