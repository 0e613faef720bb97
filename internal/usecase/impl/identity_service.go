// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"offerfeed/config"
	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/errors"
	"offerfeed/internal/usecase"

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	tokenService   service.TokenService
	sessionService service.SessionService
	metrics        service.MetricsRecorder
	apiKey         []byte
	requireAPIKey  bool
	logger         *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TokenService   service.TokenService
	SessionService service.SessionService
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	srv := &identityService{
		tokenService:   params.TokenService,
		sessionService: params.SessionService,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
	if params.Config.Auth != nil {
		srv.apiKey = []byte(params.Config.Auth.APIKey)
		srv.requireAPIKey = params.Config.Auth.RequireAPIKey
	}

	return srv
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Resolve verifies exactly the credential it is given. A failed bearer token is never
// retried against a session cookie.
func (srv *identityService) Resolve(ctx context.Context, cred entity.Credential) (*entity.Principal, error) {
	if !cred.IsPresent() {
		return entity.AnonymousPrincipal(), nil
	}

	switch cred.Source {
	case entity.CredentialBearer:
		claims, err := srv.tokenService.ValidateToken(cred.Token)
		if err != nil {
			return nil, srv.reject(ctx, cred, err)
		}

		return entity.NewAuthenticatedPrincipal(claims.UserID, entity.RolesFromStrings(claims.Roles), entity.CredentialBearer), nil

	case entity.CredentialCookie:
		session, err := srv.sessionService.ValidateSession(ctx, cred.Token)
		if err != nil {
			return nil, srv.reject(ctx, cred, err)
		}

		return entity.NewAuthenticatedPrincipal(session.UserID, entity.RolesFromStrings(session.Roles), entity.CredentialCookie), nil

	default:
		return nil, srv.reject(ctx, cred, errors.Errorf("unsupported credential source %q", cred.Source))
	}
}

func (srv *identityService) reject(ctx context.Context, cred entity.Credential, cause error) error {
	srv.metrics.IncIdentityFailure(string(cred.Source))
	srv.log(ctx).Debug("Credential rejected", slog.Any("source", cred), slog.String("reason", cause.Error()))

	return domainerrors.ErrUnauthenticated.WrapMessage(string(cred.Source) + " credential rejected")
}

// VerifyAPIKey compares in constant time. An unconfigured key never matches.
func (srv *identityService) VerifyAPIKey(key string) bool {
	if len(srv.apiKey) == 0 || key == "" {
		return false
	}

	return subtle.ConstantTimeCompare(srv.apiKey, []byte(key)) == 1
}

// APIKeyRequired reports whether anonymous reads need an API key.
func (srv *identityService) APIKeyRequired() bool {
	return srv.requireAPIKey
}
