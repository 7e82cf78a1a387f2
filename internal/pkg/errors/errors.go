package errors

import (
	"errors"
)

var (
	ErrMalformedRow = errors.New("malformed dataset row")
	ErrEmptyDataset = errors.New("dataset has no sheets")
	ErrInvalidBody  = errors.New("request body is not valid json")
	ErrMissingZip   = errors.New("request body has no zip field")
	ErrInvalidZip   = errors.New("zip field is not a string")
)
