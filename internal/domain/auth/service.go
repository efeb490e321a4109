package auth

import "context"

// AuthService implements the demo login flow: the directory's seeded
// credentials are checked and a signed token is issued so requests carry a
// user identity. Hardened credential management is out of scope.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
}
