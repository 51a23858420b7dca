package common

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode uint

// ErrorType is the sentinel of a group of errors. The errors created by
// New() and Newf() keep the code, so xerrors.Is() matches them against the
// original ErrorType.
type ErrorType struct {
	module  string
	code    ErrorCode
	message string
	err     error
}

func NewErrorType(module string, code ErrorCode, message string) ErrorType {
	return ErrorType{module: module, code: code, message: message}
}

func (e ErrorType) Code() string {
	return fmt.Sprintf("%s-%d", e.module, e.code)
}

func (e ErrorType) Message() string {
	return e.message
}

func (e ErrorType) Error() string {
	if e.err == nil {
		return e.message
	}

	return fmt.Sprintf("%s; %s", e.message, e.err.Error())
}

// New wraps err.
func (e ErrorType) New(err error) error {
	return ErrorType{
		module:  e.module,
		code:    e.code,
		message: e.message,
		err:     err,
	}
}

func (e ErrorType) Newf(format string, args ...interface{}) error {
	return e.New(xerrors.New(fmt.Sprintf(format, args...)))
}

func (e ErrorType) Unwrap() error {
	return e.err
}

func (e ErrorType) Is(err error) bool {
	var et ErrorType
	switch t := err.(type) {
	case ErrorType:
		et = t
	case *ErrorType:
		if t == nil {
			return false
		}
		et = *t
	default:
		return false
	}

	return e.module == et.module && e.code == et.code
}

func (e ErrorType) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.Code(),
		"message": e.Error(),
	}, false, false)
}
