package handler

import (
	"encoding/json"
	"net/http"

	"lifeseeker-api/common"
	"lifeseeker-api/model"
	"lifeseeker-api/service"
)

// MomentHandler holds dependencies for moment-related handlers.
type MomentHandler struct {
	service *service.MomentService
}

func NewMomentHandler(s *service.MomentService) *MomentHandler {
	return &MomentHandler{service: s}
}

func usernameFromContext(r *http.Request) (string, *common.AppError) {
	username, ok := r.Context().Value(UsernameKey).(string)
	if !ok {
		return "", common.NewAppError(http.StatusUnauthorized, "Invalid username in token", nil)
	}
	return username, nil
}

// InsertMoments godoc
// @Summary      Insert the moment list for a date
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        moments body model.InsertMomentsRequest true "Moment list for the date"
// @Success      201  {object}  model.MomentList
// @Failure      409  {object}  common.AppError "Moments already exist for this date"
// @Router       /api/moments [post]
func (h *MomentHandler) InsertMoments(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertMomentsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	moments, err := h.service.InsertMoments(username, req.MomentDate, req.Moments)
	if err != nil {
		if err == service.ErrMomentsAlreadyExist {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not insert moments", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(moments)
	return nil
}

// AppendMoments godoc
// @Summary      Append moments to a date's list
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        moments body model.InsertMomentsRequest true "Moments to append"
// @Success      201  {object}  model.MomentList
// @Router       /api/moments/append [post]
func (h *MomentHandler) AppendMoments(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertMomentsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	moments, err := h.service.AppendMoments(username, req.MomentDate, req.Moments)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not append moments", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(moments)
	return nil
}

// GetMomentsByDate godoc
// @Summary      Get all moments of the caller on a date
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Success      200  {object}  model.MomentList
// @Failure      404  {object}  common.AppError "No moments found"
// @Router       /api/moments [get]
func (h *MomentHandler) GetMomentsByDate(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	momentDate := r.URL.Query().Get("date")
	if momentDate == "" {
		return common.NewAppError(http.StatusBadRequest, "date query parameter is required", nil)
	}

	moments, err := h.service.GetMomentsByDate(username, momentDate)
	if err != nil {
		if err == service.ErrMomentsNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve moments", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(moments)
	return nil
}

// InsertMomentDetail godoc
// @Summary      Insert a moment detail record
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        detail body model.InsertMomentDetailRequest true "Moment detail"
// @Success      201  {object}  model.MomentDetail
// @Failure      409  {object}  common.AppError "Moment detail already exists"
// @Router       /api/moments/detail [post]
func (h *MomentHandler) InsertMomentDetail(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertMomentDetailRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	detail, err := h.service.InsertMomentDetail(username, &req)
	if err != nil {
		if err == service.ErrMomentDetailExists {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not insert moment detail", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(detail)
	return nil
}

// UpdateMomentDetail godoc
// @Summary      Update one annotation field of a moment detail
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        update body model.UpdateMomentDetailRequest true "Field update"
// @Success      200  {object}  model.MomentDetail
// @Failure      404  {object}  common.AppError "No moment detail found"
// @Router       /api/moments/detail [put]
func (h *MomentHandler) UpdateMomentDetail(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateMomentDetailRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	detail, err := h.service.UpdateMomentDetail(username, &req)
	if err != nil {
		if err == service.ErrMomentDetailMissing {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update moment detail", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(detail)
	return nil
}

// GetMomentDetail godoc
// @Summary      Get a moment detail record
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Param        time query string true "Local time (HH:MM:SS)"
// @Success      200  {object}  model.MomentDetail
// @Failure      404  {object}  common.AppError "No moment detail found"
// @Router       /api/moments/detail [get]
func (h *MomentHandler) GetMomentDetail(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	momentDate := r.URL.Query().Get("date")
	localTime := r.URL.Query().Get("time")
	if momentDate == "" || localTime == "" {
		return common.NewAppError(http.StatusBadRequest, "date and time query parameters are required", nil)
	}

	detail, err := h.service.GetMomentDetail(username, momentDate, localTime)
	if err != nil {
		if err == service.ErrMomentDetailMissing {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve moment detail", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(detail)
	return nil
}
