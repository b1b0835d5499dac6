package auth

import "time"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	MaxLoginAttempts  = 5
	LockoutDuration   = 15 * time.Minute
	OTPTTL            = 10 * time.Minute
	OTPLength         = 6
	MinPasswordLength = 8
)

const (
	ProfilePictureDir       = "profile-pictures"
	ProfilePictureURLPrefix = "/uploads/profile-pictures/"
)

// ProfilePictureTypes adalah mime yang boleh dipakai sebagai foto profil.
var ProfilePictureTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
