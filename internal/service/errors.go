package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStorageIsUnreachable = errors.New("storage is unreachable")
)
