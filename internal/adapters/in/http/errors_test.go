package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "required value",
			err:  errs.NewValueIsRequiredError("title"),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid value",
			err:  errs.NewValueIsInvalidError("status"),
			want: http.StatusBadRequest,
		},
		{
			name: "value out of range",
			err:  errs.NewValueIsOutOfRangeError("limit", 500, 1, 100),
			want: http.StatusBadRequest,
		},
		{
			name: "permission denied",
			err:  errs.NewPermissionDeniedError("case.create", "case"),
			want: http.StatusForbidden,
		},
		{
			name: "object not found",
			err:  errs.NewObjectNotFoundError("caseID", "42"),
			want: http.StatusNotFound,
		},
		{
			name: "conflict",
			err:  errs.NewConflictError("status"),
			want: http.StatusConflict,
		},
		{
			name: "dependency failed",
			err:  errs.NewDependencyFailedError("policy engine"),
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped invalid value",
			err:  errs.NewValueIsInvalidErrorWithCause("caseID", errors.New("bad uuid")),
			want: http.StatusBadRequest,
		},
		{
			name: "unclassified error",
			err:  errors.New("disk on fire"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestResponseError_WritesStatusAndBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := responseError(c, errs.NewObjectNotFoundError("caseID", "42"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Contains(t, body.Message, "42")
}

func TestResponseError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := responseError(c, errors.New("pq: connection reset"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body.Message)
	assert.NotContains(t, body.Message, "pq:")
}
