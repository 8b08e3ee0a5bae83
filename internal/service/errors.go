package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	// Authentication and authorization.
	ErrNotAuthenticated   = errors.New("Not authorized to access this route")
	ErrTokenInvalid       = errors.New("Token invalid or expired")
	ErrUserGone           = errors.New("User no longer exists")
	ErrForbidden          = errors.New("User role not authorized to access this route")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingCredentials = errors.New("Please provide email and password")
	ErrUserExists         = errors.New("User already exists")

	// Bot verification.
	ErrBotTokenMissing = errors.New("Bot verification token is required")
	ErrBotCheckFailed  = errors.New("Bot verification failed. Please try again.")

	// Resource lookups.
	ErrResourceNotFound     = errors.New("Resource not found")
	ErrPostNotFound         = errors.New("Blog post not found")
	ErrCommentNotFound      = errors.New("Comment not found")
	ErrParentNotFound       = errors.New("Parent comment not found")
	ErrContactNotFound      = errors.New("Contact message not found")
	ErrSubscriptionNotFound = errors.New("Subscription not found")
	ErrSocialNotFound       = errors.New("Social media link not found")
	ErrGalleryNotFound      = errors.New("Gallery image not found")
	ErrUploadNotFound       = errors.New("File not found")

	// Validation-adjacent.
	ErrDuplicateKey     = errors.New("Duplicate field value entered")
	ErrEmailSubscribed  = errors.New("This email is already subscribed")
	ErrEmailRequired    = errors.New("Please provide an email address")
	ErrMalformedBody    = errors.New("Invalid JSON payload")
	ErrNoFiles          = errors.New("Please upload at least one file")
	ErrTooManyFiles     = errors.New("Too many files in one upload")
	ErrFileNotSupported = errors.New("Only images, videos, PDFs, and common document formats are allowed")

	// Fallback.
	ErrInternal = errors.New("Server Error")
)

// ErrorMap is the closed error taxonomy: every sentinel maps to exactly
// one HTTP status. Anything outside the map is treated as internal.
var ErrorMap = map[error]int{
	ErrNotAuthenticated:   Unauthorized,
	ErrTokenInvalid:       Unauthorized,
	ErrUserGone:           Unauthorized,
	ErrForbidden:          Forbidden,
	ErrInvalidCredentials: Unauthorized,
	ErrMissingCredentials: BadRequest,
	ErrUserExists:         BadRequest,

	ErrBotTokenMissing: BadRequest,
	ErrBotCheckFailed:  BadRequest,

	ErrResourceNotFound:     NotFound,
	ErrPostNotFound:         NotFound,
	ErrCommentNotFound:      NotFound,
	ErrParentNotFound:       NotFound,
	ErrContactNotFound:      NotFound,
	ErrSubscriptionNotFound: NotFound,
	ErrSocialNotFound:       NotFound,
	ErrGalleryNotFound:      NotFound,
	ErrUploadNotFound:       NotFound,

	ErrDuplicateKey:     BadRequest,
	ErrEmailSubscribed:  BadRequest,
	ErrEmailRequired:    BadRequest,
	ErrMalformedBody:    BadRequest,
	ErrNoFiles:          BadRequest,
	ErrTooManyFiles:     BadRequest,
	ErrFileNotSupported: BadRequest,

	ErrInternal: InternalServerError,
}
