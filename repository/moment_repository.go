package repository

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
)

// IMomentRepository defines the contract for per-date moment lists and
// per-moment detail records.
type IMomentRepository interface {
	HasMomentsForDate(username, momentDate string) (bool, error)
	InsertMoments(username, momentDate string, moments []string) error
	AppendMoments(username, momentDate string, moments []string) error
	GetMomentsByDate(username, momentDate string) ([]string, error)
	InsertMomentDetail(detail *model.MomentDetail) error
	UpdateMomentDetailField(username, momentDate, localTime, field, value string) (int64, error)
	GetMomentDetail(username, momentDate, localTime string) (*model.MomentDetail, error)
}

type MomentRepository struct {
	DB *sql.DB
}

func NewMomentRepository(db *sql.DB) *MomentRepository {
	return &MomentRepository{DB: db}
}

// HasMomentsForDate reports whether any moments exist for the date.
func (r *MomentRepository) HasMomentsForDate(username, momentDate string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM moments WHERE username = $1 AND moment_date = $2)`
	if err := r.DB.QueryRow(query, username, momentDate).Scan(&exists); err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute moments exists query")
		return false, err
	}
	return exists, nil
}

// InsertMoments inserts the moment list for a date. Fails on duplicates so
// the caller can distinguish a re-insert of an existing date.
func (r *MomentRepository) InsertMoments(username, momentDate string, moments []string) error {
	return r.insertMoments(username, momentDate, moments, false)
}

// AppendMoments appends moments to a date's list with set semantics.
func (r *MomentRepository) AppendMoments(username, momentDate string, moments []string) error {
	return r.insertMoments(username, momentDate, moments, true)
}

func (r *MomentRepository) insertMoments(username, momentDate string, moments []string, ignoreConflicts bool) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":    username,
		"moment_date": momentDate,
		"count":       len(moments),
	})
	log.Info("Executing query to insert moments")

	query := `INSERT INTO moments (username, moment_date, image_name) VALUES ($1, $2, $3)`
	if ignoreConflicts {
		query += ` ON CONFLICT DO NOTHING`
	}

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction for insert moments")
		return err
	}
	defer tx.Rollback()

	for _, m := range moments {
		if _, err := tx.Exec(query, username, momentDate, m); err != nil {
			log.WithError(err).Error("Failed to execute insert moment query")
			return err
		}
	}
	return tx.Commit()
}

func (r *MomentRepository) GetMomentsByDate(username, momentDate string) ([]string, error) {
	query := `SELECT image_name FROM moments WHERE username = $1 AND moment_date = $2 ORDER BY image_name`
	rows, err := r.DB.Query(query, username, momentDate)
	if err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get moments query")
		return nil, err
	}
	defer rows.Close()

	var moments []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		moments = append(moments, m)
	}
	return moments, rows.Err()
}

// InsertMomentDetail inserts a full moment detail record. Fails when a
// record with the same (username, date, local time) key already exists.
func (r *MomentRepository) InsertMomentDetail(detail *model.MomentDetail) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":    detail.Username,
		"moment_date": detail.MomentDate,
		"local_time":  detail.LocalTime,
	})
	log.Info("Executing query to insert moment detail")

	query := `INSERT INTO moment_details (
			username, moment_date, local_time, utc_time, image_path, other_image_path,
			location, stress_level, activity,
			hr_min, hr_max, hr_mean, hr_std,
			bvp_min, bvp_max, bvp_mean, bvp_std,
			eda_min, eda_max, eda_mean, eda_std,
			temp_min, temp_max, temp_mean, temp_std
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err := r.DB.Exec(query,
		detail.Username, detail.MomentDate, detail.LocalTime, detail.UTCTime, detail.ImagePath, detail.OtherImagePath,
		detail.Location, detail.StressLevel, detail.Activity,
		detail.HeartRate.MinValue, detail.HeartRate.MaxValue, detail.HeartRate.MeanValue, detail.HeartRate.StdValue,
		detail.BVP.MinValue, detail.BVP.MaxValue, detail.BVP.MeanValue, detail.BVP.StdValue,
		detail.EDA.MinValue, detail.EDA.MaxValue, detail.EDA.MeanValue, detail.EDA.StdValue,
		detail.Temp.MinValue, detail.Temp.MaxValue, detail.Temp.MeanValue, detail.Temp.StdValue,
	)
	if err != nil {
		log.WithError(err).Error("Failed to execute insert moment detail query")
		return err
	}
	return nil
}

// updatableDetailFields whitelists the columns UpdateMomentDetailField may
// touch. The field name is interpolated into the query, so it must never
// come from user input unchecked.
var updatableDetailFields = map[string]string{
	model.ListTypeLocation:    "location",
	model.ListTypeStressLevel: "stress_level",
	model.ListTypeActivity:    "activity",
}

// UpdateMomentDetailField sets one annotation field of a detail record and
// returns the number of rows updated.
func (r *MomentRepository) UpdateMomentDetailField(username, momentDate, localTime, field, value string) (int64, error) {
	column, ok := updatableDetailFields[field]
	if !ok {
		return 0, sql.ErrNoRows
	}

	log := logger.Log.WithFields(logrus.Fields{
		"username":    username,
		"moment_date": momentDate,
		"local_time":  localTime,
		"field":       column,
	})
	log.Info("Executing query to update moment detail field")

	query := `UPDATE moment_details SET ` + column + ` = $1 WHERE username = $2 AND moment_date = $3 AND local_time = $4`
	res, err := r.DB.Exec(query, value, username, momentDate, localTime)
	if err != nil {
		log.WithError(err).Error("Failed to execute update moment detail query")
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MomentRepository) GetMomentDetail(username, momentDate, localTime string) (*model.MomentDetail, error) {
	detail := &model.MomentDetail{}
	query := `SELECT username, to_char(moment_date, 'YYYY-MM-DD'), to_char(local_time, 'HH24:MI:SS'),
			to_char(utc_time, 'HH24:MI:SS'), image_path, other_image_path,
			location, stress_level, activity,
			hr_min, hr_max, hr_mean, hr_std,
			bvp_min, bvp_max, bvp_mean, bvp_std,
			eda_min, eda_max, eda_mean, eda_std,
			temp_min, temp_max, temp_mean, temp_std
		FROM moment_details WHERE username = $1 AND moment_date = $2 AND local_time = $3`
	err := r.DB.QueryRow(query, username, momentDate, localTime).Scan(
		&detail.Username, &detail.MomentDate, &detail.LocalTime,
		&detail.UTCTime, &detail.ImagePath, &detail.OtherImagePath,
		&detail.Location, &detail.StressLevel, &detail.Activity,
		&detail.HeartRate.MinValue, &detail.HeartRate.MaxValue, &detail.HeartRate.MeanValue, &detail.HeartRate.StdValue,
		&detail.BVP.MinValue, &detail.BVP.MaxValue, &detail.BVP.MeanValue, &detail.BVP.StdValue,
		&detail.EDA.MinValue, &detail.EDA.MaxValue, &detail.EDA.MeanValue, &detail.EDA.StdValue,
		&detail.Temp.MinValue, &detail.Temp.MaxValue, &detail.Temp.MeanValue, &detail.Temp.StdValue,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get moment detail query")
		}
		return nil, err
	}
	return detail, nil
}
