package core

// MinPasswordLength is the minimum accepted password length in bytes.
const MinPasswordLength = 6

// Validate checks registration input before any store access.
func (in RegisterInput) Validate() error {
	if in.Username == "" {
		return ErrUsernameRequired
	}
	if in.Email == "" {
		return ErrEmailRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	if len(in.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Validate checks login input. Only presence is required; length rules
// apply at registration time.
func (in LoginInput) Validate() error {
	if in.Email == "" {
		return ErrEmailRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// IsValidationError reports whether err is a client-input validation error.
func IsValidationError(err error) bool {
	switch err {
	case ErrUsernameRequired, ErrEmailRequired, ErrPasswordRequired, ErrPasswordTooShort:
		return true
	}
	return false
}
