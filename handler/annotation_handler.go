package handler

import (
	"encoding/json"
	"net/http"

	"lifeseeker-api/common"
	"lifeseeker-api/model"
	"lifeseeker-api/service"
)

type AnnotationHandler struct {
	service *service.AnnotationService
}

func NewAnnotationHandler(s *service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{service: s}
}

// SetDefaults godoc
// @Summary      Replace the caller's annotation value lists
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        defaults body model.InsertDefaultAnnotationsRequest true "Default lists"
// @Success      201  {object}  model.AnnotationLists
// @Router       /api/annotations/defaults [post]
func (h *AnnotationHandler) SetDefaults(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertDefaultAnnotationsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	lists, err := h.service.SetDefaultLists(username, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not set default annotation data", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(lists)
	return nil
}

// GetAllLists godoc
// @Summary      Get all annotation value lists of the caller
// @Tags         annotations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.AnnotationLists
// @Failure      404  {object}  common.AppError "No annotation data"
// @Router       /api/annotations [get]
func (h *AnnotationHandler) GetAllLists(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	lists, err := h.service.GetAllLists(username)
	if err != nil {
		if err == service.ErrAnnotationListNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve annotation data", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(lists)
	return nil
}

// AddValue godoc
// @Summary      Add one value to one annotation list
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        value body model.InsertAnnotationValueRequest true "Value to add"
// @Success      201  {object}  model.AnnotationList
// @Router       /api/annotations/values [post]
func (h *AnnotationHandler) AddValue(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	var req model.InsertAnnotationValueRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	list, err := h.service.AddValue(username, req.ListType, req.Value)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not add annotation value", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(list)
	return nil
}

// GetList godoc
// @Summary      Get one annotation value list
// @Tags         annotations
// @Produce      json
// @Security     BearerAuth
// @Param        listType path string true "List type (location | stress_level | activity)"
// @Success      200  {object}  model.AnnotationList
// @Failure      400  {object}  common.AppError "Invalid list type"
// @Failure      404  {object}  common.AppError "List not found"
// @Router       /api/annotations/{listType} [get]
func (h *AnnotationHandler) GetList(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	listType := r.PathValue("listType")
	if !model.ValidListType(listType) {
		return common.NewAppError(http.StatusBadRequest, "Invalid list type", nil)
	}

	list, err := h.service.GetList(username, listType)
	if err != nil {
		if err == service.ErrAnnotationListNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve annotation list", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(list)
	return nil
}
