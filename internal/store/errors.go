package store

import "errors"

var (
	ErrMalformedSnapshot = errors.New("malformed account snapshot")
	ErrMalformedRecord   = errors.New("malformed transaction record")
	ErrUnknownDriver     = errors.New("unknown storage driver")
)
