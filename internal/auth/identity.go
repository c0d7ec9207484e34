// Package auth extracts bearer tokens and best-effort identity claims, and
// provides the per-route authorization gates.
package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Identity carries the claims decoded from a bearer token. The decode is
// unverified: the upstream API is the authority on token validity, and an
// Identity is never treated as a trust boundary on its own.
type Identity struct {
	Subject  string
	Email    string
	Name     string
	TenantID string
	Roles    []string
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles. An absent role claim is an empty set, never elevated trust.
func (id *Identity) HasAnyRole(roles ...string) bool {
	if id == nil {
		return false
	}
	for _, role := range roles {
		if slices.Contains(id.Roles, role) {
			return true
		}
	}
	return false
}

// identityClaims is the wire shape of the token payload. Roles live under
// realm_access.roles (Keycloak convention used by the upstream realm).
type identityClaims struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	TenantID    string `json:"tenant_id"`
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	jwt.RegisteredClaims
}

// DecodeIdentity parses the token payload without verifying the signature.
// On any parse failure it returns nil and the request proceeds as anonymous.
func DecodeIdentity(token string) *Identity {
	claims := &identityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return &Identity{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		TenantID: claims.TenantID,
		Roles:    claims.RealmAccess.Roles,
	}
}
