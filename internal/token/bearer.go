package token

import "strings"

const bearerScheme = "bearer"

// FromAuthorization extracts the credentials of a Bearer authorization value.
// The scheme is case-insensitive; any other scheme yields an empty string.
func FromAuthorization(value string) string {
	scheme, credentials, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(credentials)
}
