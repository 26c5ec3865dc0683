package storage

// Logical key space of the persisted state, tier-independent.
const (
	KeyUserData          = "user_data"
	KeySessionToken      = "session_token"
	KeyRegistrationDraft = "registration_draft"
	KeyFailedAttempts    = "failed_attempts"
	KeyLockoutTime       = "lockout_time"
)

// ServiceName is the fixed namespace the credential pair is stored under in
// the secure tier.
const ServiceName = "com.regvault.app"
