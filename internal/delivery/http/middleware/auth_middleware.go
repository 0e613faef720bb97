package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"offerfeed/config"
	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/delivery/http/response"
	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderAPIKey carries the optional service API key.
const HeaderAPIKey = "X-Api-Key"

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// AuthMiddleware resolves the request principal from a bearer token or the session cookie.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := ""
	if params.Config.Session != nil {
		cookieName = params.Config.Session.CookieName
	}

	return &AuthMiddleware{
		identityUC: params.IdentityUC,
		cookieName: cookieName,
		logger:     params.Logger,
	}
}

// ExtractCredential selects the request credential. A bearer token takes precedence over the cookie.
func ExtractCredential(req *http.Request, cookieName string) entity.Credential {
	if header := req.Header.Get(echo.HeaderAuthorization); len(header) > len(bearerPrefix) &&
		strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		if token := strings.TrimSpace(header[len(bearerPrefix):]); token != "" {
			return entity.Credential{Source: entity.CredentialBearer, Token: token}
		}
	}

	if cookieName != "" {
		if cookie, err := req.Cookie(cookieName); err == nil && cookie.Value != "" {
			return entity.Credential{Source: entity.CredentialCookie, Token: cookie.Value}
		}
	}

	return entity.NoCredential()
}

// Identify resolves the caller for read endpoints. A rejected credential is logged and the
// request continues as anonymous, unless an API key is required and none was presented.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		cred := ExtractCredential(req, m.cookieName)

		principal, err := m.identityUC.Resolve(req.Context(), cred)
		if err != nil {
			deliverycontext.Logger(req.Context(), m.logger).Warn("Continuing as anonymous after rejected credential",
				slog.Any("source", cred),
				slog.String("path", req.URL.Path),
			)
			principal = entity.AnonymousPrincipal()
		}

		if key := req.Header.Get(HeaderAPIKey); key != "" && m.identityUC.VerifyAPIKey(key) {
			principal.Service = true
		}

		if m.identityUC.APIKeyRequired() && !principal.IsAuthenticated() && !principal.Service {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("a valid API key or session is required"))
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// Authenticate requires a verified user. Any failure, or no credential at all, is a 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		cred := ExtractCredential(req, m.cookieName)

		principal, err := m.identityUC.Resolve(req.Context(), cred)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if !principal.IsAuthenticated() {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}
