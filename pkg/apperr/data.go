package apperr

import "fmt"

// DataError is the root of the data layer: the operation reached its backend
// but the data itself was unusable or absent.
type DataError struct {
	base
}

func (e *DataError) Error() string { return e.render("DataError", "") }
func (e *DataError) Kind() Kind    { return KindData }

func NewData(msg string, cause error) *DataError {
	return &DataError{base{Msg: msg, Cause: cause}}
}

// NotFoundError reports an absent resource.
type NotFoundError struct {
	base
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	s := ""
	if e.ResourceType != "" {
		s += fmt.Sprintf(" (Type: %s)", e.ResourceType)
	}
	if e.ResourceID != "" {
		s += fmt.Sprintf(" (ID: %s)", e.ResourceID)
	}
	return e.render("NotFoundError", s)
}
func (e *NotFoundError) Kind() Kind { return KindNotFound }

func NewNotFound(msg, resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{base: base{Msg: msg}, ResourceType: resourceType, ResourceID: resourceID}
}

// DuplicateError reports a uniqueness violation.
type DuplicateError struct {
	base
	ResourceType   string
	DuplicateField string
}

func (e *DuplicateError) Error() string { return e.render("DuplicateError", "") }
func (e *DuplicateError) Kind() Kind    { return KindDuplicate }

func NewDuplicate(msg, resourceType, duplicateField string) *DuplicateError {
	return &DuplicateError{base: base{Msg: msg}, ResourceType: resourceType, DuplicateField: duplicateField}
}
