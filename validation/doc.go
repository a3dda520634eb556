// Package validation provides struct validation using go-playground/validator
// struct tags.
//
//	type Config struct {
//	    BaseURL string `validate:"omitempty,url"`
//	}
//
//	if err := validation.Validate(cfg); err != nil { ... }
package validation
