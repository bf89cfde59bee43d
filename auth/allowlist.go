package auth

import (
	"os"
	"strings"
)

// AllowList authorizes admins by email. There is no roles table; any
// principal whose email is on the list and who knows the password is
// an admin. Comparison is case-insensitive.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails ...string) *AllowList {
	a := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			a.emails[e] = struct{}{}
		}
	}
	return a
}

// AllowListFromEnv reads the comma-separated ADMIN_EMAILS variable.
func AllowListFromEnv() *AllowList {
	return NewAllowList(strings.Split(os.Getenv("ADMIN_EMAILS"), ",")...)
}

func (a *AllowList) IsAdmin(email string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
