package entity

import (
	"log/slog"

	"github.com/google/uuid"
)

// CredentialSource identifies where a request credential came from.
type CredentialSource string

const (
	// CredentialNone means the request carried no credential.
	CredentialNone CredentialSource = "none"
	// CredentialCookie means the credential is the ambient session cookie.
	CredentialCookie CredentialSource = "cookie"
	// CredentialBearer means the credential is an Authorization: Bearer token.
	CredentialBearer CredentialSource = "bearer"
)

// Credential is the single credential selected for a request.
// Token is never rendered by String or slog.
type Credential struct {
	Source CredentialSource
	Token  string
}

// NoCredential returns the empty credential.
func NoCredential() Credential {
	return Credential{Source: CredentialNone}
}

// IsPresent reports whether the request carried a credential.
func (c Credential) IsPresent() bool {
	return c.Source != CredentialNone && c.Source != "" && c.Token != ""
}

// String implements fmt.Stringer without the token.
func (c Credential) String() string {
	return string(c.Source)
}

// LogValue implements slog.LogValuer without the token.
func (c Credential) LogValue() slog.Value {
	return slog.StringValue(string(c.Source))
}

// Principal is the resolved caller of one request.
// An anonymous principal has a zero UserID.
type Principal struct {
	UserID  uuid.UUID
	Roles   Roles
	Source  CredentialSource
	Service bool // Trusted service caller authenticated by API key.

	subscriptions       []uuid.UUID
	subscriptionsLoaded bool
}

// AnonymousPrincipal returns a principal with no identity.
func AnonymousPrincipal() *Principal {
	return &Principal{Source: CredentialNone}
}

// NewAuthenticatedPrincipal returns a principal for a verified user.
func NewAuthenticatedPrincipal(userID uuid.UUID, roles Roles, source CredentialSource) *Principal {
	return &Principal{
		UserID: userID,
		Roles:  roles,
		Source: source,
	}
}

// IsAuthenticated reports whether the principal carries a verified user identity.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UserID != uuid.Nil
}

// Subscriptions returns the followed commerce IDs and whether they were loaded for this request.
func (p *Principal) Subscriptions() ([]uuid.UUID, bool) {
	if p == nil {
		return nil, false
	}

	return p.subscriptions, p.subscriptionsLoaded
}

// SetSubscriptions caches the followed commerce IDs for the rest of the request.
func (p *Principal) SetSubscriptions(ids []uuid.UUID) {
	p.subscriptions = ids
	p.subscriptionsLoaded = true
}
