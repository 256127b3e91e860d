package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Pagination limits for list endpoints
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// AccessTokenTTL is the default lifetime of an issued access token.
// There is no refresh mechanism; expired tokens require a new login.
const AccessTokenTTL = 30 * time.Minute
