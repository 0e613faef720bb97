package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "offerfeed/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is reused", incoming: "req-123", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id with spaces is replaced", incoming: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.RequestID(c)
				deliverycontext.Logger(c.Request().Context(), nil).Info("handled")

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, seen)
			assert.Contains(t, logs.String(), "request_id="+seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}
