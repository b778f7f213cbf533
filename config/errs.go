package config

import "errors"

var (
	// ErrValidate wraps every schema validation failure.
	ErrValidate = errors.New("invalid configuration")
)
