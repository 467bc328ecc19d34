package core

import "time"

type Config struct {
	// Secret signs bearer tokens. Process-wide, loaded once at startup,
	// never rotated within a process lifetime.
	Secret string

	Database CredentialStore

	HTTP HTTPAdapter

	// Optional config
	PasswordHasher PasswordHandler
	TokenTTL       time.Duration
	BasePath       string
}

type Lawang struct {
	Auth     AuthProvider
	BasePath string
}
