package errutil

import "errors"

// errors.Is で比較できるよう、同一の値であれば等しくなる
type InternalError struct {
	err error
}

func NewInternalError(msg string) InternalError {
	return InternalError{err: errors.New(msg)}
}

func (e InternalError) Error() string {
	return e.err.Error()
}
