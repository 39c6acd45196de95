package core

import (
	"errors"
)

var (
	ErrPlatformInit  = errors.New("platform initialization failed")
	ErrWindowCreate  = errors.New("window creation failed")
	ErrInvalidConfig = errors.New("invalid configuration")
)
