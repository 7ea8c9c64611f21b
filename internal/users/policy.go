package users

import "unicode"

// ValidatePassword checks the password complexity rules and returns whether
// the password is acceptable plus a human-readable reason when it is not.
//
// Rules, first failure wins:
//   - at least 8 characters
//   - at least one lowercase letter
//   - at least one uppercase letter
//   - at least one digit
//   - at least one special character (neither alphanumeric, underscore nor
//     whitespace)
//
// The function is stateless and used both for self-service signup and for
// admin-driven resets.
func ValidatePassword(password string) (bool, string) {
	runes := []rune(password)
	if len(runes) < 8 {
		return false, "password must be at least 8 characters"
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_' && !unicode.IsSpace(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return false, "password must contain at least one lowercase letter"
	case !hasUpper:
		return false, "password must contain at least one uppercase letter"
	case !hasDigit:
		return false, "password must contain at least one digit"
	case !hasSpecial:
		return false, "password must contain at least one special character (e.g., !@#$%)"
	}
	return true, "OK"
}
