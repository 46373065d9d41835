package usecase

import (
	"context"
	"errors"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
)

type authUsecase struct {
	credentials domain.CredentialsRepository
	hasher      domain.PasswordHasher
	tokens      domain.TokenIssuer
}

func NewAuthUsecase(
	credentials domain.CredentialsRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
) domain.AuthUsecase {
	return &authUsecase{credentials: credentials, hasher: hasher, tokens: tokens}
}

// Login checks the password of a user or company admin and issues a token
// for that subject. Unknown emails and wrong passwords look the same.
func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResult, error) {
	creds, err := u.credentials.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if !u.hasher.Matches(creds.HashedPassword, req.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Issue(creds.ID, creds.Type)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.LoginResult{Token: token, ID: creds.ID, Type: creds.Type}, nil
}
