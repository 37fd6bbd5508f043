package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// Example: 0991234567 -> 099****567
func MaskPhone(phone string) string {
	return maskMiddle(phone, 3, 3)
}

// Example: 1710034065 -> 17******65
func MaskNationalID(id string) string {
	return maskMiddle(id, 2, 2)
}

func maskMiddle(value string, head, tail int) string {
	if value == "" {
		return ""
	}
	if len(value) <= head+tail {
		return strings.Repeat("*", len(value))
	}
	return value[:head] + strings.Repeat("*", len(value)-head-tail) + value[len(value)-tail:]
}
