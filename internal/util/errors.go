package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrActivityNotFound   = errors.New("activity not found")
)
