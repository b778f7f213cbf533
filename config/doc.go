// Package config loads, patches and validates McKenna burner
// configuration files.
//
// Load reads a JSON or YAML file into a document tree; Decode checks
// the McKenna schema and produces a typed Config. The two layers are
// deliberately separate: the document layer treats absent or
// mistyped fields as normal lookup outcomes, while the schema layer
// reports them as validation errors wrapping ErrValidate.
package config
