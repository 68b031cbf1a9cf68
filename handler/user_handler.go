package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lifeseeker-api/common"
	"lifeseeker-api/model"
	"lifeseeker-api/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a credential record and public profile for a new user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "Registration payload"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError "Invalid payload or user already registered"
// @Router       /users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, err := h.service.Register(&req)
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// GetUser godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  model.User
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /users/{username} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	user, err := h.service.GetUser(username)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}

// ListUsers godoc
// @Summary      List user profiles
// @Tags         users
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {array}  model.User
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.service.ListUsers(skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve users", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
	return nil
}

// AddDates godoc
// @Summary      Append capture dates to the caller's date set
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        dates body model.InsertDatesRequest true "Dates to append"
// @Success      201  {object}  map[string][]string
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Router       /api/users/dates [post]
func (h *UserHandler) AddDates(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertDatesRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	if err := h.service.AddDates(username, req.Dates); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not insert dates", err)
	}

	dates, err := h.service.GetDates(username)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve dates", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string][]string{"dates": dates})
	return nil
}

// GetDates godoc
// @Summary      Get the caller's sorted capture date list
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Failure      404  {object}  common.AppError "User has no dates"
// @Router       /api/users/dates [get]
func (h *UserHandler) GetDates(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	dates, err := h.service.GetDates(username)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve dates", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"dates": dates})
	return nil
}
