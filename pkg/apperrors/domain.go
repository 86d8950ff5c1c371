package apperrors

import "net/http"

// Predefined errors for the auth and catalog domains.

var (
	// ErrInvalidCredentials deliberately covers both "user not found"
	// and "wrong password" so login failures carry no enumeration
	// signal.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	ErrUnauthorized = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)

	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = New(CodeTokenExpired, "auth", "Token expired", http.StatusUnauthorized)

	ErrWeakPassword = New(CodeWeakPassword, "auth", "Password must be at least 6 characters", http.StatusBadRequest)

	ErrEmailAlreadyExists = New(CodeAlreadyExists, "users", "Email already registered", http.StatusConflict)
	ErrUserNotFound       = New(CodeNotFound, "users", "User not found", http.StatusNotFound)

	ErrResetTokenNotFound = New(CodeInvalidToken, "auth", "Reset token not found", http.StatusUnauthorized)
	ErrResetTokenUsed     = New(CodeInvalidToken, "auth", "Reset token already used", http.StatusUnauthorized)
	ErrResetTokenExpired  = New(CodeTokenExpired, "auth", "Reset token expired", http.StatusUnauthorized)

	ErrCourseNotFound = New(CodeNotFound, "catalog", "Course not found", http.StatusNotFound)
	ErrLessonNotFound = New(CodeNotFound, "catalog", "Lesson not found", http.StatusNotFound)
)
