// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// InsertDatesRequest appends capture dates to the caller's date set.
type InsertDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// InsertMomentsRequest carries the moment list for one date.
type InsertMomentsRequest struct {
	MomentDate string   `json:"moment_date" validate:"required,datetime=2006-01-02"`
	Moments    []string `json:"moment_list" validate:"required,min=1"`
}

// InsertMomentDetailRequest carries a full moment detail record.
type InsertMomentDetailRequest struct {
	MomentDate string `json:"moment_date" validate:"required,datetime=2006-01-02"`
	LocalTime  string `json:"local_time" validate:"required,datetime=15:04:05"`

	UTCTime        string `json:"utc_time" validate:"required,datetime=15:04:05"`
	ImagePath      string `json:"image_path" validate:"required"`
	OtherImagePath string `json:"other_image_path"`

	Location    string `json:"location"`
	StressLevel string `json:"stress_level"`
	Activity    string `json:"activity"`

	HeartRate PhysiologicalSummary `json:"heart_rate"`
	BVP       PhysiologicalSummary `json:"bvp"`
	EDA       PhysiologicalSummary `json:"eda"`
	Temp      PhysiologicalSummary `json:"temp"`
}

// UpdateMomentDetailRequest updates exactly one annotation field of a
// moment detail record.
type UpdateMomentDetailRequest struct {
	MomentDate string `json:"moment_date" validate:"required,datetime=2006-01-02"`
	LocalTime  string `json:"local_time" validate:"required,datetime=15:04:05"`
	DataType   string `json:"data_type" validate:"required,oneof=location stress_level activity"`
	Value      string `json:"value" validate:"required"`
}

// InsertDefaultAnnotationsRequest replaces the caller's annotation lists.
type InsertDefaultAnnotationsRequest struct {
	LocationList    []string `json:"location_list" validate:"required"`
	StressLevelList []string `json:"stress_level_list" validate:"required"`
	ActivityList    []string `json:"activity_list" validate:"required"`
}

// InsertAnnotationValueRequest adds one value to one annotation list.
type InsertAnnotationValueRequest struct {
	ListType string `json:"list_type" validate:"required,oneof=location stress_level activity"`
	Value    string `json:"value" validate:"required"`
}
