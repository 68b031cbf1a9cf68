package handler

import (
	"encoding/json"
	"net/http"

	"lifeseeker-api/common"
	"lifeseeker-api/logger"
	"lifeseeker-api/service"
)

type AuthHandler struct {
	authService *service.AuthService
	tokenIssuer *service.TokenIssuer
}

func NewAuthHandler(authService *service.AuthService, tokenIssuer *service.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenIssuer: tokenIssuer,
	}
}

// Login godoc
// @Summary      Authenticate for an access token
// @Description  Verifies username and password form fields and returns a signed access/refresh token pair. Logging in again invalidates all previously issued tokens for the user.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Success      200  {object}  model.TokenPair
// @Failure      401  {object}  common.AppError "Incorrect username or password"
// @Router       /auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := r.ParseForm(); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid form data", err)
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		return common.NewAppError(http.StatusBadRequest, "username and password are required", nil)
	}

	if !h.authService.Authenticate(username, password) {
		return common.NewAppError(http.StatusUnauthorized, "Incorrect username or password", nil)
	}

	tokens, err := h.tokenIssuer.CreateAuthenticationToken(username)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue authentication token", err)
	}

	logger.Log.WithField("username", username).Info("User logged in")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tokens)
	return nil
}
