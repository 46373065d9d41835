package domain

import "context"

// Credentials is the stored login of a user or company admin.
type Credentials struct {
	ID             string
	Type           string // "user" or "company"
	HashedPassword string
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Type  string `json:"type"`
}

// CredentialsRepository looks up users first, then company admins.
type CredentialsRepository interface {
	FindByEmail(ctx context.Context, email string) (*Credentials, error)
}

// PasswordHasher is provided by an external hashing library.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type TokenIssuer interface {
	Issue(id, subjectType string) (string, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}
