package store

import "errors"

var (
	ErrAccountExists  = errors.New("account already exists")
	ErrRecordNotFound = errors.New("record not found")
	ErrNoPrice        = errors.New("no usable price quote")
	ErrReadOnly       = errors.New("book is open read-only")
)
