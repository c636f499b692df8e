package apperr

import "time"

// BusinessError is the root of the business-rule layer.
type BusinessError struct {
	base
}

func (e *BusinessError) Error() string { return e.render("BusinessError", "") }
func (e *BusinessError) Kind() Kind    { return KindBusiness }

func NewBusiness(msg string) *BusinessError {
	return &BusinessError{base{Msg: msg}}
}

// PermissionError reports an action the current role is not allowed to
// perform.
type PermissionError struct {
	base
	RequiredPermission string
	UserRole           string
}

func (e *PermissionError) Error() string { return e.render("PermissionError", "") }
func (e *PermissionError) Kind() Kind    { return KindPermission }

func NewPermission(msg, requiredPermission, userRole string) *PermissionError {
	return &PermissionError{base: base{Msg: msg}, RequiredPermission: requiredPermission, UserRole: userRole}
}

// ResourceLockedError reports a resource held by another owner.
type ResourceLockedError struct {
	base
	LockedBy      string
	LockExpiresAt time.Time
}

func (e *ResourceLockedError) Error() string { return e.render("ResourceLockedError", "") }
func (e *ResourceLockedError) Kind() Kind    { return KindResourceLocked }

func NewResourceLocked(msg, lockedBy string, lockExpiresAt time.Time) *ResourceLockedError {
	return &ResourceLockedError{base: base{Msg: msg}, LockedBy: lockedBy, LockExpiresAt: lockExpiresAt}
}
