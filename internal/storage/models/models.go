package models

import (
	"errors"
	"time"
)

// ErrUserNotFound is returned by user lookups when the id has no row.
var ErrUserNotFound = errors.New("user not found")

// User rows are owned by the external account service; this service only
// reads them (and updates mutable profile fields).
type User struct {
	ID                int64
	Username          string
	Email             string
	FullName          string
	Phone             string
	Age               int
	Gender            string
	Location          string
	PreferredLanguage string
	IsActive          bool
	CreatedAt         time.Time
}

// Interaction is one completed chat exchange. Append-only; the response
// column always holds the exact text returned to the caller.
type Interaction struct {
	ID        int64
	UserID    int64
	Message   string
	Response  string
	Language  string
	CreatedAt time.Time
}

// ProfileUpdate carries the mutable user fields. Nil pointers leave the
// stored value unchanged.
type ProfileUpdate struct {
	FullName          *string
	Phone             *string
	Age               *int
	Gender            *string
	Location          *string
	PreferredLanguage *string
}
