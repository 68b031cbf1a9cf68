package repository

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
)

// IAnnotationRepository defines the contract for the per-user annotation
// value lists (location, stress level, activity).
type IAnnotationRepository interface {
	ReplaceLists(username string, lists *model.AnnotationLists) error
	AddValue(username, listType, value string) error
	GetList(username, listType string) ([]string, error)
	GetAllLists(username string) (*model.AnnotationLists, error)
}

type AnnotationRepository struct {
	DB *sql.DB
}

func NewAnnotationRepository(db *sql.DB) *AnnotationRepository {
	return &AnnotationRepository{DB: db}
}

// ReplaceLists replaces all three annotation lists of a user with the
// supplied defaults.
func (r *AnnotationRepository) ReplaceLists(username string, lists *model.AnnotationLists) error {
	log := logger.Log.WithField("username", username)
	log.Info("Executing query to replace annotation lists")

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction for replace annotation lists")
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM annotation_values WHERE username = $1`, username); err != nil {
		log.WithError(err).Error("Failed to clear annotation lists")
		return err
	}

	insert := `INSERT INTO annotation_values (username, list_type, value) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	for listType, values := range map[string][]string{
		model.ListTypeLocation:    lists.LocationList,
		model.ListTypeStressLevel: lists.StressLevelList,
		model.ListTypeActivity:    lists.ActivityList,
	} {
		for _, v := range values {
			if _, err := tx.Exec(insert, username, listType, v); err != nil {
				log.WithError(err).Error("Failed to insert annotation value")
				return err
			}
		}
	}
	return tx.Commit()
}

// AddValue adds one value to one list. Duplicate values are ignored.
func (r *AnnotationRepository) AddValue(username, listType, value string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":  username,
		"list_type": listType,
	})
	log.Info("Executing query to add annotation value")

	query := `INSERT INTO annotation_values (username, list_type, value) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	if _, err := r.DB.Exec(query, username, listType, value); err != nil {
		log.WithError(err).Error("Failed to execute add annotation value query")
		return err
	}
	return nil
}

func (r *AnnotationRepository) GetList(username, listType string) ([]string, error) {
	query := `SELECT value FROM annotation_values WHERE username = $1 AND list_type = $2 ORDER BY value`
	rows, err := r.DB.Query(query, username, listType)
	if err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get annotation list query")
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *AnnotationRepository) GetAllLists(username string) (*model.AnnotationLists, error) {
	query := `SELECT list_type, value FROM annotation_values WHERE username = $1 ORDER BY value`
	rows, err := r.DB.Query(query, username)
	if err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get all annotation lists query")
		return nil, err
	}
	defer rows.Close()

	lists := &model.AnnotationLists{Username: username}
	for rows.Next() {
		var listType, value string
		if err := rows.Scan(&listType, &value); err != nil {
			return nil, err
		}
		switch listType {
		case model.ListTypeLocation:
			lists.LocationList = append(lists.LocationList, value)
		case model.ListTypeStressLevel:
			lists.StressLevelList = append(lists.StressLevelList, value)
		case model.ListTypeActivity:
			lists.ActivityList = append(lists.ActivityList, value)
		}
	}
	return lists, rows.Err()
}
