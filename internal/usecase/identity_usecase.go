// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"offerfeed/internal/domain/entity"
)

// IdentityUsecase resolves the credential selected for a request into a principal.
type IdentityUsecase interface {
	// Resolve verifies the credential. A request without a credential resolves to the
	// anonymous principal. A present but invalid credential returns ErrUnauthenticated.
	Resolve(ctx context.Context, cred entity.Credential) (*entity.Principal, error)

	// VerifyAPIKey reports whether key matches the configured service API key.
	VerifyAPIKey(key string) bool

	// APIKeyRequired reports whether read endpoints demand an API key or a signed-in user.
	APIKeyRequired() bool
}
