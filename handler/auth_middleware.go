package handler

import (
	"context"
	"net/http"
	"strings"

	"lifeseeker-api/common"
	"lifeseeker-api/service"
)

type contextKey string

const UsernameKey contextKey = "username"

const (
	msgInvalidCredentials = "Could not validate credentials"
	msgTokenExpired       = "Access token has expired"
)

// AuthMiddleware is the request gate for protected routes. It decodes the
// bearer token and re-validates its claims against the server-side state
// before releasing the username into the request context.
//
// Check order matters: signature and structure first, then user existence
// and issuance binding, and expiration last. A superseded-but-unexpired
// token gets the generic credentials error, not the expiry-specific one.
func AuthMiddleware(codec *service.TokenCodec, authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, appErr := bearerToken(r)
			if appErr != nil {
				appErr.Send(w)
				return
			}

			claims, err := codec.Decode(tokenString)
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, msgInvalidCredentials, err).Send(w)
				return
			}

			username := claims.Username
			if username == "" {
				common.NewAppError(http.StatusUnauthorized, msgInvalidCredentials, nil).Send(w)
				return
			}

			if !authService.VerifyUser(username) {
				common.NewAppError(http.StatusUnauthorized, msgInvalidCredentials, nil).Send(w)
				return
			}

			var issuedAt int64
			if claims.IssuedAt != nil {
				issuedAt = claims.IssuedAt.Unix()
			}
			if !authService.VerifyUserTimeInfo(username, issuedAt) {
				common.NewAppError(http.StatusUnauthorized, msgInvalidCredentials, nil).Send(w)
				return
			}

			var expiresAt int64
			if claims.ExpiresAt != nil {
				expiresAt = claims.ExpiresAt.Unix()
			}
			if !authService.VerifyExpirationTime(expiresAt) {
				common.NewAppError(http.StatusUnauthorized, msgTokenExpired, nil).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, *common.AppError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
		return "", common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
	}

	return headerParts[1], nil
}
