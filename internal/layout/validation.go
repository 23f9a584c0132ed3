package layout

import "fmt"

// ValidationError describes one invalid block.
type ValidationError struct {
	Field   string // e.g. "blocks[3]"
	Message string
	Line    int // line number in YAML (if available)
}

// Error returns a formatted error message
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("validation error at %s (line %d): %s", e.Field, e.Line, e.Message)
	}
	return fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidBlock.
func (e ValidationError) Unwrap() error {
	return ErrInvalidBlock
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Unwrap exposes each error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
