package model

// Annotation list types. Every annotation value belongs to exactly one list.
const (
	ListTypeLocation    = "location"
	ListTypeStressLevel = "stress_level"
	ListTypeActivity    = "activity"
)

// AnnotationLists groups a user's selectable annotation values.
type AnnotationLists struct {
	Username        string   `json:"username"`
	LocationList    []string `json:"location_list"`
	StressLevelList []string `json:"stress_level_list"`
	ActivityList    []string `json:"activity_list"`
}

// AnnotationList is a single named value list.
type AnnotationList struct {
	ListType string   `json:"list_type"`
	DataList []string `json:"data_list"`
}

// ValidListType reports whether listType names one of the annotation lists.
func ValidListType(listType string) bool {
	switch listType {
	case ListTypeLocation, ListTypeStressLevel, ListTypeActivity:
		return true
	}
	return false
}
