package prompt

// Validator accepts or rejects a parsed candidate. A non-nil error rejects it
// and its message is shown to the user verbatim.
type Validator[T any] interface {
	Validate(candidate T) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[T any] func(candidate T) error

func (f ValidatorFunc[T]) Validate(candidate T) error {
	if f == nil {
		return nil
	}
	return f(candidate)
}

// validate treats a nil validator as accepting everything.
func validate[T any](v Validator[T], candidate T) error {
	if v == nil {
		return nil
	}
	return v.Validate(candidate)
}
