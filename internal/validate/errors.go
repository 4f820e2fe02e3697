package validate

// Code classifies why a field failed validation.
type Code string

const (
	CodeMissingField Code = "MISSING_FIELD"
	CodeLength       Code = "LENGTH"
	CodeFormat       Code = "FORMAT"
	CodeWhitelist    Code = "WHITELIST"
	CodeRange        Code = "RANGE"
	CodeType         Code = "TYPE"
	CodeRequired     Code = "REQUIRED"
)

// FieldError is a single violated field contract. Message is short and safe
// to return to the client.
type FieldError struct {
	Field   string
	Code    Code
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldErr(field string, code Code, msg string) *FieldError {
	return &FieldError{Field: field, Code: code, Message: msg}
}
