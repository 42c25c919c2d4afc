package domain

type DistrictCount struct {
	District string `json:"district"`
	Votes    int    `json:"votes"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Votes int `json:"votes"`
}

type OptionFlow struct {
	VoteOption
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type CategoryFlow struct {
	CategoryID string       `json:"category_id"`
	Title      string       `json:"title"`
	TotalVotes int          `json:"total_votes"`
	Options    []OptionFlow `json:"options"`
}

// Analytics holds the secondary aggregates. Counts are per record, so a
// voter answering three categories contributes three to their district.
// TopDistrict and PeakHour are nil when there is no data.
type Analytics struct {
	TotalRecords   int            `json:"total_records"`
	Districts      map[string]int `json:"districts"`
	Hourly         map[int]int    `json:"hourly"`
	RecentHours    []HourCount    `json:"recent_hours"`
	TopDistrict    *DistrictCount `json:"top_district"`
	PeakHour       *HourCount     `json:"peak_hour"`
	CompletionRate int            `json:"completion_rate"`
	Flow           []CategoryFlow `json:"flow"`
}
