package entity

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCredential_NeverRendersToken(t *testing.T) {
	cred := Credential{Source: CredentialBearer, Token: "secret-token-value"}

	assert.Equal(t, "bearer", cred.String())
	assert.NotContains(t, fmt.Sprintf("%v", cred), "secret-token-value")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("resolving", slog.Any("credential", cred))
	assert.NotContains(t, buf.String(), "secret-token-value")
}

func TestPrincipal_Subscriptions(t *testing.T) {
	p := NewAuthenticatedPrincipal(uuid.New(), Roles{RoleUser}, CredentialCookie)

	ids, loaded := p.Subscriptions()
	assert.False(t, loaded)
	assert.Empty(t, ids)

	followed := []uuid.UUID{uuid.New()}
	p.SetSubscriptions(followed)

	ids, loaded = p.Subscriptions()
	assert.True(t, loaded)
	assert.Equal(t, followed, ids)
}

func TestAnonymousPrincipal(t *testing.T) {
	assert.False(t, AnonymousPrincipal().IsAuthenticated())
	assert.False(t, (*Principal)(nil).IsAuthenticated())
}
