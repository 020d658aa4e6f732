// Package redact strips credentials and filesystem paths from strings before
// they reach the logs. Database drivers tend to echo connection strings and
// file locations in their error text.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

var (
	// user:password@ in a connection URL
	connUserInfoRegex = regexp.MustCompile(`(?i)\b(postgres|postgresql|file)://[^@/\s]+@`)

	// password=... in a keyword/value DSN
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*('[^']*'|"[^"]*"|[^\s&]+)`)

	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`)
)

// String redacts sensitive fragments from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := connUserInfoRegex.ReplaceAllString(input, "${1}://"+CredentialPlaceholder+"@")
	result = passwordRegex.ReplaceAllString(result, "${1}="+CredentialPlaceholder)
	result = unixPathRegex.ReplaceAllString(result, PathPlaceholder)
	result = winPathRegex.ReplaceAllString(result, PathPlaceholder)
	return result
}

// Error redacts err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// URL returns a connection URL safe to log: the password is replaced and the
// query string dropped. Unparseable input is redacted wholesale.
func URL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return CredentialPlaceholder
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	u.RawQuery = ""
	return u.String()
}
