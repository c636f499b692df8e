package apperr

import (
	"errors"
	"strings"
)

// Kind identifies a concrete failure variant.
type Kind string

const (
	KindGeneral Kind = "general"

	KindNetwork    Kind = "network"
	KindServer     Kind = "server"
	KindTimeout    Kind = "timeout"
	KindConnection Kind = "connection"

	KindAuth               Kind = "auth"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindTokenExpired       Kind = "token_expired"

	KindValidation     Kind = "validation"
	KindRequiredFields Kind = "required_fields"

	KindData      Kind = "data"
	KindNotFound  Kind = "not_found"
	KindDuplicate Kind = "duplicate"

	KindCache     Kind = "cache"
	KindCacheMiss Kind = "cache_miss"

	KindBusiness       Kind = "business"
	KindPermission     Kind = "permission"
	KindResourceLocked Kind = "resource_locked"

	KindConfig        Kind = "config"
	KindMissingConfig Kind = "missing_config"
)

// Class groups kinds into failure layers.
type Class string

const (
	ClassGeneral    Class = "general"
	ClassNetwork    Class = "network"
	ClassAuth       Class = "auth"
	ClassValidation Class = "validation"
	ClassData       Class = "data"
	ClassCache      Class = "cache"
	ClassBusiness   Class = "business"
	ClassConfig     Class = "config"
)

var kindClasses = map[Kind]Class{
	KindGeneral: ClassGeneral,

	KindNetwork:    ClassNetwork,
	KindServer:     ClassNetwork,
	KindTimeout:    ClassNetwork,
	KindConnection: ClassNetwork,

	KindAuth:               ClassAuth,
	KindInvalidCredentials: ClassAuth,
	KindTokenExpired:       ClassAuth,

	KindValidation:     ClassValidation,
	KindRequiredFields: ClassValidation,

	KindData:      ClassData,
	KindNotFound:  ClassData,
	KindDuplicate: ClassData,

	KindCache:     ClassCache,
	KindCacheMiss: ClassCache,

	KindBusiness:       ClassBusiness,
	KindPermission:     ClassBusiness,
	KindResourceLocked: ClassBusiness,

	KindConfig:        ClassConfig,
	KindMissingConfig: ClassConfig,
}

// Class returns the layer the kind belongs to.
func (k Kind) Class() Class {
	if c, ok := kindClasses[k]; ok {
		return c
	}
	return ClassGeneral
}

// AppError is the contract every taxonomy variant satisfies. It is the only
// failure payload result.Result accepts.
type AppError interface {
	error
	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
	// Kind returns the concrete variant discriminator.
	Kind() Kind
	// Message returns the human-readable message.
	Message() string
}

// base carries the fields shared by every variant. Fields are set once at
// construction and read-only thereafter.
type base struct {
	Msg   string
	Code  string
	Cause error
}

func (b base) Message() string { return b.Msg }
func (b base) Unwrap() error   { return b.Cause }

// render builds the canonical string form: "<TypeName>: <message>", followed
// by " (Code: <code>)" when a code is set, followed by the variant suffix.
func (b base) render(typeName, suffix string) string {
	var sb strings.Builder
	sb.WriteString(typeName)
	sb.WriteString(": ")
	sb.WriteString(b.Msg)
	if b.Code != "" {
		sb.WriteString(" (Code: ")
		sb.WriteString(b.Code)
		sb.WriteString(")")
	}
	sb.WriteString(suffix)
	return sb.String()
}

// GenericError is the catch-all variant used for unclassified faults, mostly
// produced by From when boundary code wraps a raw error.
type GenericError struct {
	base
}

func (e *GenericError) Error() string { return e.render("AppError", "") }
func (e *GenericError) Kind() Kind    { return KindGeneral }

// New builds a generic failure. An optional machine code may follow the
// message.
func New(msg string, code ...string) *GenericError {
	e := &GenericError{base{Msg: msg}}
	if len(code) > 0 {
		e.Code = code[0]
	}
	return e
}

// From normalizes any error into the taxonomy. A cause that already is an
// AppError passes through unchanged unless an override message is supplied;
// everything else is wrapped into a GenericError keeping the cause. The
// message defaults to the cause's own text.
func From(cause error, msg ...string) AppError {
	var app AppError
	if errors.As(cause, &app) && len(msg) == 0 {
		return app
	}
	m := ""
	if len(msg) > 0 {
		m = msg[0]
	} else if cause != nil {
		m = cause.Error()
	}
	return &GenericError{base{Msg: m, Cause: cause}}
}
