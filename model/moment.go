package model

// MomentList holds all the moment image names captured by a user on a date.
type MomentList struct {
	Username   string   `json:"username"`
	MomentDate string   `json:"moment_date"`
	Moments    []string `json:"moment_list"`
}

// PhysiologicalSummary is the per-moment statistical summary of one sensor
// stream (heart rate, BVP, EDA or skin temperature).
type PhysiologicalSummary struct {
	MinValue  float64 `json:"min_value"`
	MaxValue  float64 `json:"max_value"`
	MeanValue float64 `json:"mean_value"`
	StdValue  float64 `json:"std_value"`
}

// MomentDetail is the full annotation record of a single captured moment,
// keyed by (username, moment_date, local_time).
type MomentDetail struct {
	Username   string `json:"username"`
	MomentDate string `json:"moment_date"`
	LocalTime  string `json:"local_time"`

	UTCTime        string `json:"utc_time"`
	ImagePath      string `json:"image_path"`
	OtherImagePath string `json:"other_image_path"`

	// Annotation labels
	Location    string `json:"location"`
	StressLevel string `json:"stress_level"`
	Activity    string `json:"activity"`

	// Physiological data
	HeartRate PhysiologicalSummary `json:"heart_rate"`
	BVP       PhysiologicalSummary `json:"bvp"`
	EDA       PhysiologicalSummary `json:"eda"`
	Temp      PhysiologicalSummary `json:"temp"`
}
