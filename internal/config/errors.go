package config

import "errors"

var (
	// ErrInvalidConfig is returned when a resolved value cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrConfigExists is returned by InitConfig when the file is already there.
	ErrConfigExists = errors.New("config file already exists")
)
