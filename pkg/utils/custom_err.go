package utils

import "errors"

var (
	ErrInvalidProfile        = errors.New("invalid trip profile")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrUnknownFeedbackAction = errors.New("unknown feedback action")
	ErrDatabaseError         = errors.New("database error")
)
