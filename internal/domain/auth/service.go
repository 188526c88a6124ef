package auth

import "context"

// AuthService defines login and token lifecycle operations
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// LoginWithGoogle accepts a verified Google email; the account must
	// already exist, there is no self-signup.
	LoginWithGoogle(ctx context.Context, email string) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
