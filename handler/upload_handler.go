// file: handler/upload_handler.go

package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"lifeseeker-api/common"
	"lifeseeker-api/service"
)

// Multipart uploads larger than this stay on disk instead of memory.
const maxUploadMemory = 32 << 20

type UploadHandler struct {
	service *service.UploadService
}

func NewUploadHandler(s *service.UploadService) *UploadHandler {
	return &UploadHandler{service: s}
}

// Upload godoc
// @Summary      Upload a zipped lifelog photo archive
// @Description  Extracts the archive into the caller's data directory, registers the capture dates and moment lists, and creates a blank detail record per capture.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Zip archive of lifelog captures"
// @Success      201  {object}  service.UploadSummary
// @Failure      400  {object}  common.AppError "Missing or unreadable archive"
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid multipart form", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "file form field is required", err)
	}
	defer file.Close()

	tmpPath, err := saveUploadTmp(file, filepath.Ext(header.Filename))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not store uploaded archive", err)
	}
	defer os.Remove(tmpPath)

	summary, err := h.service.IngestArchive(username, tmpPath)
	if err != nil {
		if err == service.ErrEmptyArchive {
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not ingest archive", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(summary)
	return nil
}

func saveUploadTmp(file io.Reader, suffix string) (string, error) {
	tmp, err := os.CreateTemp("", "lifelog-upload-*"+suffix)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
