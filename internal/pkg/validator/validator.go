package validator

// Validator checks a struct against its `validate` tags.
//
// Implementations return an error whose message lists the failing
// fields; callers treat any non-nil error as invalid input.
type Validator interface {
	Validate(data any) error
}
