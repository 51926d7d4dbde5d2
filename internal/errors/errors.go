// Package errors wraps github.com/go-errors/errors so that every error leaving
// a package carries the stack of its origin.
package errors

import (
	"errors"
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

var (
	ErrNilParam    = errors.New(`nil parameter`)
	ErrNilReceiver = errors.New(`nil receiver`)
)

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

// New wraps obj with a stack trace. Unlike errorsGo.New it returns nil for
// nil and keeps the origin of already wrapped errors.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

type Error = errorsGo.Error

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(ErrNilReceiver, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(ErrNilParam, 3, args...)
}

func errMsgNilTester(sentinel error, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(sentinel, skip)
	}
	for i := range args {
		if args[i] == nil {
			return errMsg(sentinel, skip)
		}
	}
	return nil
}

// errMsg keeps sentinel in the chain, so Is matches it.
func errMsg(sentinel error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return errorsGo.Wrap(sentinel, skip)
	}
	return errorsGo.Wrap(fmt.Errorf(`%w: %s()`, sentinel, runtime.FuncForPC(pc).Name()), skip)
}
