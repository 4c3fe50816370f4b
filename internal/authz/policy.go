// Package authz holds the admin authorization policy. The policy is built
// once at startup and injected into the admin-facing middleware; admin
// checks never compare emails inline at call sites.
package authz

import "strings"

// RoleAdmin role claim value granting admin access
const RoleAdmin = "admin"

// Policy decides whether a requester gets admin access. Two sources grant
// it: the configured fail-safe email whitelist and the auth provider's role
// claim. Either one is sufficient - the whitelist keeps working when role
// data lags, the role claim keeps working when the whitelist is empty.
type Policy struct {
	adminEmails map[string]struct{}
}

// NewPolicy builds a policy from the configured whitelist; emails are
// compared trimmed and lowercased.
func NewPolicy(adminEmails []string) *Policy {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		normalized := strings.ToLower(strings.TrimSpace(e))
		if normalized != "" {
			emails[normalized] = struct{}{}
		}
	}
	return &Policy{adminEmails: emails}
}

// IsAdmin reports whether the identity gets admin access
func (p *Policy) IsAdmin(id Identity) bool {
	if id.Role == RoleAdmin {
		return true
	}
	if id.Email == "" {
		return false
	}
	_, ok := p.adminEmails[strings.ToLower(strings.TrimSpace(id.Email))]
	return ok
}
