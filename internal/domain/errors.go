package domain

import "errors"

var (
	// Category errors
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryType = errors.New("invalid category type")

	// Entry errors
	ErrInvalidYear      = errors.New("year must be between 1 and 9999")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrInvalidEntryMode = errors.New("entry mode must be actual, plan or both")
	ErrTooManyEntries   = errors.New("too many entries in one save")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")
)
