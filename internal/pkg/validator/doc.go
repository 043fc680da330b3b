// Package validator checks request structs against their validate tags.
// Modules depend on the Validator interface; the go-playground/validator v10
// implementation behind it owns translations and custom rules.
package validator
