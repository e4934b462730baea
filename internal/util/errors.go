package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrLessonNotPublished = errors.New("lesson not published")
	ErrAlreadySubmitted   = errors.New("already submitted")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrTestNotFound       = errors.New("mini test not found")
	ErrTestNotPublished   = errors.New("mini test not published")
)
