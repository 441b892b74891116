package http

import (
	"errors"
	"net/http"
	"strings"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated by the auth middleware.
const (
	ctxActorRef = "auth.actor_ref"
	ctxOrgID    = "auth.org_id"
	ctxRole     = "auth.role"
)

// RoleStaff marks platform operators allowed on the cross-organization
// staff views.
const RoleStaff = "staff"

// accessClaims is the JWT payload issued by the identity service. Every
// token carries the acting user's reference, their organization, and a role.
type accessClaims struct {
	ActorRef string `json:"actor_ref"`
	OrgID    string `json:"org_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and stores the actor's identity
// on the request context. Requests without a valid token get a 401.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c, err)
			}

			claims := &accessClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid {
				return unauthorized(c, errors.New("invalid token"))
			}
			if claims.ActorRef == "" || claims.OrgID == "" {
				return unauthorized(c, errors.New("token is missing identity claims"))
			}
			if _, err = kernel.UUIDFromString(claims.OrgID); err != nil {
				return unauthorized(c, errors.New("token carries a malformed org id"))
			}

			c.Set(ctxActorRef, claims.ActorRef)
			c.Set(ctxOrgID, claims.OrgID)
			c.Set(ctxRole, claims.Role)
			return next(c)
		}
	}
}

// RequireStaff admits only tokens carrying the staff role. It must run after
// AuthMiddleware.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(ctxRole).(string); role != RoleStaff {
				return c.JSON(http.StatusForbidden, errorResponse{
					Code:    http.StatusForbidden,
					Message: "staff role required",
				})
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("Authorization header is not a bearer token")
	}
	return strings.TrimPrefix(header, prefix), nil
}

func unauthorized(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

// actorRef returns the authenticated actor's reference.
func actorRef(c echo.Context) string {
	ref, _ := c.Get(ctxActorRef).(string)
	return ref
}

// orgID returns the authenticated actor's organization identifier. The
// middleware has already checked the claim parses.
func orgID(c echo.Context) (kernel.UUID, error) {
	raw, _ := c.Get(ctxOrgID).(string)
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orgID", err)
	}
	return id, nil
}
