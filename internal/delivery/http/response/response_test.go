package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "offerfeed/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleAppError_ClientErrorKeepsDetails(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "page must be at least 1", body.Error.Details)
}

func TestHandleAppError_ServerErrorHidesDetails(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "select failed"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation missing")
	assert.NotContains(t, rec.Body.String(), "select failed")
}

func TestHandleAppError_UnknownErrorIsReturned(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	assert.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}

func TestPaginated(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Paginated(c, []string{"a"}, map[string]int{"total": 1}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"code":200,"message":"Success","data":["a"],"pagination":{"total":1}}`, rec.Body.String())
}
