package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/logging"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/users"
)

// Placeholder credentials of the fallback identity created when a request
// without a token hits an empty store.
const (
	FallbackUserEmail    = "test@example.com"
	FallbackUserPassword = "test123"
)

// TokenDecoder turns an access token back into a user id.
type TokenDecoder interface {
	Decode(token string) (int64, error)
}

// Authenticator resolves the user behind a request.
type Authenticator struct {
	tokens         TokenDecoder
	users          users.Repository
	hasher         PasswordHasher
	allowAnonymous bool
	logger         logging.Logger
}

func NewAuthenticator(tokens TokenDecoder, repo users.Repository, hasher PasswordHasher, allowAnonymous bool, logger logging.Logger) *Authenticator {
	return &Authenticator{
		tokens:         tokens,
		users:          repo,
		hasher:         hasher,
		allowAnonymous: allowAnonymous,
		logger:         logger.With("module", "authenticator"),
	}
}

// Resolve returns the user identified by token.
//
// Every token problem, including a valid token for a user that no longer
// exists, is reported as common.ErrorUnauthorized. An empty token binds to
// the first user in the store (creating the fallback user if the store is
// empty) unless anonymous access is disabled.
func (a *Authenticator) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token != "" {
		return a.resolveToken(ctx, token)
	}

	if !a.allowAnonymous {
		return nil, common.ErrorUnauthorized
	}

	return a.fallbackUser(ctx)
}

func (a *Authenticator) resolveToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := a.tokens.Decode(token)
	if err != nil {
		a.logger.Debug(ctx, "token rejected", "error", err)
		return nil, common.ErrorUnauthorized
	}

	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.logger.Debug(ctx, "token subject not found", "user_id", userID)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

func (a *Authenticator) fallbackUser(ctx context.Context) (*models.User, error) {
	user, err := a.users.FindFirst(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error loading fallback user: %w", err)
	}

	hash, err := a.hasher.Hash(FallbackUserPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing fallback password: %w", err)
	}

	user, err = a.users.Create(ctx, &models.User{
		Email:          FallbackUserEmail,
		HashedPassword: hash,
		IsActive:       true,
	})
	if err != nil {
		// a concurrent request created it first
		if errors.Is(err, common.ErrorAlreadyExists) {
			return a.users.FindFirst(ctx)
		}
		return nil, fmt.Errorf("error creating fallback user: %w", err)
	}

	a.logger.Warn(ctx, "fallback user created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// BearerToken extracts the token from an Authorization header value.
// Anything other than a non-empty "Bearer" credential yields "".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.TokenTypeBearer) {
		return ""
	}
	return strings.TrimSpace(token)
}
