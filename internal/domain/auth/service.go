package auth

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// AuthService defines identity operations: signup, login, and resolving the
// authenticated employee from token claims.
type AuthService interface {
	// Signup registers a self-service employee account with seeded leave
	// balances and returns a fresh access token.
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)

	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Me resolves the authenticated employee from the request context.
	Me(ctx context.Context) (employee.EmployeeResponse, error)
}
