package databaseerrors

import "errors"

var (
	ErrConnection = errors.New("database connection unavailable")
)
