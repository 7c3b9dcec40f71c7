package service

import "errors"

var (
	// ErrAlreadySubscribed is returned when the email is already on the list.
	ErrAlreadySubscribed = errors.New("email already subscribed")
	// ErrMeetingNotFound is returned for an unknown meeting id.
	ErrMeetingNotFound = errors.New("meeting not found")
	// ErrUsernameTaken is returned by Signup for a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned by Authenticate.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
