package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"orderdelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// DelivererIdentity resolves the acting deliverer for lifecycle endpoints.
// The identifier comes from the `sub` claim of a bearer token when one is
// presented. A `delivererId` field in the request body is accepted only when
// body fallback is enabled; older mobile clients still send it.
type DelivererIdentity struct {
	secret            []byte
	allowBodyFallback bool
}

// NewDelivererIdentity creates a resolver with the given signing secret.
func NewDelivererIdentity(secret string, allowBodyFallback bool) DelivererIdentity {
	return DelivererIdentity{
		secret:            []byte(secret),
		allowBodyFallback: allowBodyFallback,
	}
}

// Resolve returns the acting deliverer's ID. bodyDelivererID is the value
// parsed from the request body, zero when absent.
func (r DelivererIdentity) Resolve(c echo.Context, bodyDelivererID int64) (int64, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		return r.fromBearerToken(authHeader)
	}

	if r.allowBodyFallback && bodyDelivererID > 0 {
		return bodyDelivererID, nil
	}

	return 0, errs.NewValueIsRequiredError("delivererId")
}

func (r DelivererIdentity) fromBearerToken(authHeader string) (int64, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errs.NewValueIsInvalidErrorWithCause("authorization", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return 0, errs.NewValueIsInvalidErrorWithCause("authorization",
			errors.New("token has no subject"))
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("authorization",
			fmt.Errorf("subject %q is not a deliverer id", subject))
	}

	return id, nil
}
