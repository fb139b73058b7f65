package inifile

import "errors"

var (
	// ErrNoPath indicates Save was called on a handle with no file path bound.
	ErrNoPath = errors.New("no file path bound")
	// ErrNotFound indicates a comment was attached to a missing section or key.
	ErrNotFound = errors.New("section or key not found")
	// ErrCreateConfigDir indicates the destination directory could not be created.
	ErrCreateConfigDir = errors.New("failed to create config directory")
	// ErrWriteConfig indicates the config file could not be written.
	ErrWriteConfig = errors.New("failed to write config")
)
