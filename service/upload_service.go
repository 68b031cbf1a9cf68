// file: service/upload_service.go

package service

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
	"lifeseeker-api/repository"
	"lifeseeker-api/telemetry"
)

var ErrEmptyArchive = errors.New("archive contains no lifelog captures")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadSummary reports what an archive ingestion produced.
type UploadSummary struct {
	Dates   int `json:"dates"`
	Moments int `json:"moments"`
}

// UploadService ingests zipped lifelog photo archives: it extracts the
// images into the user's data directory, registers the capture dates and
// per-date moment lists, and creates a blank detail record per capture
// ready for annotation.
type UploadService struct {
	userRepo   repository.IUserRepository
	momentRepo repository.IMomentRepository
	dataDir    string
}

func NewUploadService(userRepo repository.IUserRepository, momentRepo repository.IMomentRepository, dataDir string) *UploadService {
	return &UploadService{
		userRepo:   userRepo,
		momentRepo: momentRepo,
		dataDir:    dataDir,
	}
}

// IngestArchive processes the zip archive at archivePath for username.
func (s *UploadService) IngestArchive(username, archivePath string) (*UploadSummary, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"username": username,
		"archive":  archivePath,
	})
	log.Info("Starting lifelog archive ingestion")

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer reader.Close()

	destination := filepath.Join(s.dataDir, username)
	if err := os.MkdirAll(destination, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create user data directory: %w", err)
	}

	if err := s.extract(&reader.Reader, destination); err != nil {
		return nil, err
	}

	byDate := groupCapturesByDate(&reader.Reader)
	if len(byDate) == 0 {
		return nil, ErrEmptyArchive
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if err := s.userRepo.InsertDates(username, dates); err != nil {
		return nil, err
	}

	summary := &UploadSummary{Dates: len(dates)}
	for _, date := range dates {
		captures := byDate[date]
		sort.Slice(captures, func(i, j int) bool {
			return captureTimeKey(captures[i]) < captureTimeKey(captures[j])
		})

		if err := s.momentRepo.AppendMoments(username, date, captures); err != nil {
			return nil, err
		}
		summary.Moments += len(captures)

		for _, capture := range captures {
			localTime, err := parseCaptureTime(capture)
			if err != nil {
				log.WithField("capture", capture).WithError(err).Warn("Skipping capture with unparseable timestamp")
				continue
			}

			detail := &model.MomentDetail{
				Username:       username,
				MomentDate:     date,
				LocalTime:      localTime,
				UTCTime:        localTime,
				ImagePath:      capture,
				OtherImagePath: capture,
			}
			// Re-uploading an archive hits the primary key on details
			// already ingested; that is not an ingestion failure. Any
			// other storage error aborts the ingestion.
			if err := s.momentRepo.InsertMomentDetail(detail); err != nil {
				if existing, getErr := s.momentRepo.GetMomentDetail(username, date, localTime); getErr == nil && existing != nil {
					telemetry.CaptureException(err)
					continue
				}
				return nil, fmt.Errorf("failed to insert moment detail for %s: %w", capture, err)
			}
		}
	}

	log.WithFields(logrus.Fields{
		"dates":   summary.Dates,
		"moments": summary.Moments,
	}).Info("Lifelog archive ingestion finished")

	return summary, nil
}

func (s *UploadService) extract(reader *zip.Reader, destination string) error {
	for _, file := range reader.File {
		target := filepath.Join(destination, file.Name)
		// Reject entries that would escape the destination directory.
		if !strings.HasPrefix(target, filepath.Clean(destination)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := copyZipEntry(file, target); err != nil {
			return err
		}
	}
	return nil
}

func copyZipEntry(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// groupCapturesByDate collects the lifelog image entries of the archive,
// keyed by the leading date segment of their path. Thumbnails and
// non-image files are skipped.
func groupCapturesByDate(reader *zip.Reader) map[string][]string {
	byDate := make(map[string][]string)
	for _, file := range reader.File {
		name := file.Name
		if file.FileInfo().IsDir() {
			continue
		}
		if !strings.Contains(name, "lifelog") || strings.Contains(name, "thumb") {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		date := strings.SplitN(name, "/", 2)[0]
		if _, err := time.Parse("2006-01-02", date); err != nil {
			continue
		}
		byDate[date] = append(byDate[date], name)
	}
	return byDate
}

// captureStamp locates the YYYYMMDD_HHMMSS stamp in the capture's base
// filename. Camera exports carry arbitrary segments before and after the
// stamp, so the underscore segments are scanned for an 8-digit date
// followed by a 6-digit time.
func captureStamp(capture string) (string, bool) {
	base := strings.TrimSuffix(filepath.Base(capture), filepath.Ext(capture))
	parts := strings.Split(base, "_")
	for i := 0; i+1 < len(parts); i++ {
		if isDigits(parts[i], 8) && isDigits(parts[i+1], 6) {
			return parts[i] + "_" + parts[i+1], true
		}
	}
	return "", false
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// captureTimeKey sorts captures by their timestamp stamp, matching the
// capture order of the camera. Stampless names sort after stamped ones.
func captureTimeKey(capture string) string {
	if stamp, ok := captureStamp(capture); ok {
		return stamp
	}
	return "~" + capture
}

// parseCaptureTime extracts the local capture time from the YYYYMMDD_HHMMSS
// stamp of the filename.
func parseCaptureTime(capture string) (string, error) {
	stamp, ok := captureStamp(capture)
	if !ok {
		return "", fmt.Errorf("no timestamp in capture name %q", capture)
	}

	parsed, err := time.Parse("20060102_150405", stamp)
	if err != nil {
		return "", err
	}
	return parsed.Format("15:04:05"), nil
}
