package respond

import (
	"regexp"
)

var (
	// News provider API key passed as a query parameter
	apiKeyPattern = regexp.MustCompile(`(?i)(apiKey=)[^&\s"]+`)

	// Bearer tokens in echoed headers or error messages
	bearerPattern = regexp.MustCompile(`Bearer [A-Za-z0-9\-_.]+`)

	// Database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return Sanitize(err.Error())
}

// Sanitize masks API keys, bearer tokens and DSN passwords in s.
func Sanitize(s string) string {
	s = apiKeyPattern.ReplaceAllString(s, "${1}****")
	s = bearerPattern.ReplaceAllString(s, "Bearer ****")
	s = dbPasswordPattern.ReplaceAllString(s, "://$1:****@")
	return s
}
