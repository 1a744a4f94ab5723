package storage

import "errors"

var ErrWriteFailed = errors.New("failed to write identity record")
