package validator

// Validator validates a struct using its `validate` tags. A nil return means
// the value passed every rule.
type Validator interface {
	Validate(data any) error
}
