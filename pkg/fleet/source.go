package fleet

type SourceKind string

const (
	SourceDrivingHistory SourceKind = "driving-history"
	SourceActivityDetail SourceKind = "activity-detail"
)

var SourceKinds = []SourceKind{SourceDrivingHistory, SourceActivityDetail}

type SourceStats struct {
	TotalRecords    int `json:"total_records" bson:"total_records" groups:"basic,detailed"`
	FilteredRecords int `json:"filtered_records" bson:"filtered_records" groups:"basic,detailed"`
	ProcessedFiles  int `json:"processed_files" bson:"processed_files" groups:"basic,detailed"`
}

func (s *SourceStats) Add(other SourceStats) {
	s.TotalRecords += other.TotalRecords
	s.FilteredRecords += other.FilteredRecords
	s.ProcessedFiles += other.ProcessedFiles
}
