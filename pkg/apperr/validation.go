package apperr

import (
	"sort"
	"strings"
)

// DefaultValidationMessage is applied when a validation failure is built
// without an explicit message.
const DefaultValidationMessage = "Validation failed"

// RequiredFieldMessage is the per-field message synthesized for missing
// required fields.
const RequiredFieldMessage = "This field is required"

// ValidationError reports input that failed one or more checks. Errors maps
// a field name to the messages recorded against it.
type ValidationError struct {
	base
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return e.render("ValidationError", fieldSuffix(e.Errors))
}
func (e *ValidationError) Kind() Kind { return KindValidation }

// NewValidation builds a validation failure. An empty msg falls back to
// DefaultValidationMessage. The errs map is not copied; callers hand over
// ownership.
func NewValidation(msg string, errs map[string][]string) *ValidationError {
	if msg == "" {
		msg = DefaultValidationMessage
	}
	return &ValidationError{base: base{Msg: msg}, Errors: errs}
}

// RequiredFieldsError reports absent required fields. The Errors map is
// synthesized at construction: every missing field, in input order, maps to
// [RequiredFieldMessage].
type RequiredFieldsError struct {
	base
	Errors        map[string][]string
	MissingFields []string
}

func (e *RequiredFieldsError) Error() string {
	return e.render("RequiredFieldsError", " (Missing: "+strings.Join(e.MissingFields, ", ")+")")
}
func (e *RequiredFieldsError) Kind() Kind { return KindRequiredFields }

func NewRequiredFields(missingFields []string) *RequiredFieldsError {
	errs := make(map[string][]string, len(missingFields))
	for _, f := range missingFields {
		errs[f] = []string{RequiredFieldMessage}
	}
	return &RequiredFieldsError{
		base:          base{Msg: "Required fields are missing"},
		Errors:        errs,
		MissingFields: missingFields,
	}
}

// fieldSuffix renders per-field messages in lexical field order so the
// output is deterministic.
func fieldSuffix(errs map[string][]string) string {
	if len(errs) == 0 {
		return ""
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString(" (")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(errs[f], ", "))
	}
	sb.WriteString(")")
	return sb.String()
}
