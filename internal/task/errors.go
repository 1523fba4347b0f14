package task

import "errors"

var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrTaskNotFound    = errors.New("task not found")
)
