package apperror

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownCommand  = errors.New("unknown command")
)
