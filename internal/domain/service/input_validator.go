package service

// InputValidator checks request DTOs before any store call.
// Implementations return a domain validation error describing every failed field.
type InputValidator interface {
	Validate(i any) error
}
