package domain

// MaxUsernameLength is the longest username accepted at registration.
const MaxUsernameLength = 50
