package apperr

import "errors"

// KindOf returns the kind of the first taxonomy error along err's chain, or
// "" when the chain carries none.
func KindOf(err error) Kind {
	var app AppError
	if errors.As(err, &app) {
		return app.Kind()
	}
	return ""
}

// ClassOf returns the layer of the first taxonomy error along err's chain,
// or "" when the chain carries none.
func ClassOf(err error) Class {
	var app AppError
	if errors.As(err, &app) {
		return app.Kind().Class()
	}
	return ""
}

// HasClass reports whether err belongs to the given layer. Subtypes match
// their layer root: a ServerError is a network failure, a TokenExpiredError
// an auth failure.
func HasClass(err error, class Class) bool {
	return err != nil && ClassOf(err) == class
}

func IsNetwork(err error) bool    { return HasClass(err, ClassNetwork) }
func IsAuth(err error) bool       { return HasClass(err, ClassAuth) }
func IsValidation(err error) bool { return HasClass(err, ClassValidation) }
func IsData(err error) bool       { return HasClass(err, ClassData) }
func IsCache(err error) bool      { return HasClass(err, ClassCache) }
func IsBusiness(err error) bool   { return HasClass(err, ClassBusiness) }
func IsConfig(err error) bool     { return HasClass(err, ClassConfig) }

// IsKind reports whether err's first taxonomy error has exactly the given
// kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// AsKind narrows err to a concrete taxonomy type, traversing wrapped causes.
func AsKind[E AppError](err error) (E, bool) {
	var target E
	ok := errors.As(err, &target)
	return target, ok
}
