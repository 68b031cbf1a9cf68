package service

import (
	"database/sql"
	"errors"

	"lifeseeker-api/model"
	"lifeseeker-api/repository"
)

var (
	ErrMomentsAlreadyExist = errors.New("moments already exist for this date")
	ErrMomentsNotFound     = errors.New("no moments found")
	ErrMomentDetailExists  = errors.New("moment detail already exists")
	ErrMomentDetailMissing = errors.New("no moment detail found")
)

// MomentService handles the per-date moment lists and per-moment detail
// records of a user.
type MomentService struct {
	momentRepo repository.IMomentRepository
}

func NewMomentService(momentRepo repository.IMomentRepository) *MomentService {
	return &MomentService{momentRepo: momentRepo}
}

// InsertMoments creates the moment list for a date. The date must not
// already have moments.
func (s *MomentService) InsertMoments(username, momentDate string, moments []string) (*model.MomentList, error) {
	exists, err := s.momentRepo.HasMomentsForDate(username, momentDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMomentsAlreadyExist
	}
	if err := s.momentRepo.InsertMoments(username, momentDate, moments); err != nil {
		return nil, err
	}
	return s.GetMomentsByDate(username, momentDate)
}

// AppendMoments adds moments to a date's list; duplicates are ignored.
func (s *MomentService) AppendMoments(username, momentDate string, moments []string) (*model.MomentList, error) {
	if err := s.momentRepo.AppendMoments(username, momentDate, moments); err != nil {
		return nil, err
	}
	return s.GetMomentsByDate(username, momentDate)
}

func (s *MomentService) GetMomentsByDate(username, momentDate string) (*model.MomentList, error) {
	moments, err := s.momentRepo.GetMomentsByDate(username, momentDate)
	if err != nil {
		return nil, err
	}
	if len(moments) == 0 {
		return nil, ErrMomentsNotFound
	}
	return &model.MomentList{
		Username:   username,
		MomentDate: momentDate,
		Moments:    moments,
	}, nil
}

func (s *MomentService) InsertMomentDetail(username string, req *model.InsertMomentDetailRequest) (*model.MomentDetail, error) {
	detail := &model.MomentDetail{
		Username:       username,
		MomentDate:     req.MomentDate,
		LocalTime:      req.LocalTime,
		UTCTime:        req.UTCTime,
		ImagePath:      req.ImagePath,
		OtherImagePath: req.OtherImagePath,
		Location:       req.Location,
		StressLevel:    req.StressLevel,
		Activity:       req.Activity,
		HeartRate:      req.HeartRate,
		BVP:            req.BVP,
		EDA:            req.EDA,
		Temp:           req.Temp,
	}
	if err := s.momentRepo.InsertMomentDetail(detail); err != nil {
		// A duplicate key violation means the moment was already ingested.
		if existing, getErr := s.momentRepo.GetMomentDetail(username, req.MomentDate, req.LocalTime); getErr == nil && existing != nil {
			return nil, ErrMomentDetailExists
		}
		return nil, err
	}
	return s.momentRepo.GetMomentDetail(username, req.MomentDate, req.LocalTime)
}

// UpdateMomentDetail sets one annotation field of a detail record and
// returns the updated record.
func (s *MomentService) UpdateMomentDetail(username string, req *model.UpdateMomentDetailRequest) (*model.MomentDetail, error) {
	affected, err := s.momentRepo.UpdateMomentDetailField(username, req.MomentDate, req.LocalTime, req.DataType, req.Value)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrMomentDetailMissing
	}
	return s.momentRepo.GetMomentDetail(username, req.MomentDate, req.LocalTime)
}

func (s *MomentService) GetMomentDetail(username, momentDate, localTime string) (*model.MomentDetail, error) {
	detail, err := s.momentRepo.GetMomentDetail(username, momentDate, localTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMomentDetailMissing
		}
		return nil, err
	}
	return detail, nil
}
