package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

const (
	testActorRef = "user/alice"
	testOrgID    = "f7f1b2c3-4d5e-6f70-8192-a3b4c5d6e7f8"
)

func signToken(t *testing.T, secret []byte, claims accessClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims() accessClaims {
	return accessClaims{
		ActorRef: testActorRef,
		OrgID:    testOrgID,
		Role:     "member",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func performAuthed(t *testing.T, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware(testSecret)(next)
	require.NoError(t, handler(c))
	return rec
}

func TestAuthMiddleware_ValidToken_PopulatesContext(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	var gotActor, gotOrg, gotRole string
	rec := performAuthed(t, "Bearer "+token, func(c echo.Context) error {
		gotActor = actorRef(c)
		org, err := orgID(c)
		require.NoError(t, err)
		gotOrg = org.String()
		gotRole, _ = c.Get(ctxRole).(string)
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testActorRef, gotActor)
	assert.Equal(t, testOrgID, gotOrg)
	assert.Equal(t, "member", gotRole)
}

func TestAuthMiddleware_MissingHeader_Unauthorized(t *testing.T) {
	rec := performAuthed(t, "", rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer_Unauthorized(t *testing.T) {
	rec := performAuthed(t, "Basic dXNlcjpwYXNz", rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret_Unauthorized(t *testing.T) {
	token := signToken(t, []byte("other secret"), validClaims())
	rec := performAuthed(t, "Bearer "+token, rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken_Unauthorized(t *testing.T) {
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token := signToken(t, testSecret, claims)

	rec := performAuthed(t, "Bearer "+token, rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingOrgClaim_Unauthorized(t *testing.T) {
	claims := validClaims()
	claims.OrgID = ""
	token := signToken(t, testSecret, claims)

	rec := performAuthed(t, "Bearer "+token, rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedOrgClaim_Unauthorized(t *testing.T) {
	claims := validClaims()
	claims.OrgID = "not-a-uuid"
	token := signToken(t, testSecret, claims)

	rec := performAuthed(t, "Bearer "+token, rejectCall(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaff_MemberRole_Forbidden(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ctxRole, "member")

	handler := RequireStaff()(rejectCall(t))
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireStaff_StaffRole_Passes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ctxRole, RoleStaff)

	handler := RequireStaff()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// rejectCall fails the test if the wrapped handler is reached.
func rejectCall(t *testing.T) echo.HandlerFunc {
	return func(echo.Context) error {
		t.Fatal("handler must not be called")
		return nil
	}
}
