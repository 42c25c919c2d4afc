package domain

type OptionResult struct {
	VoteOption
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type CategoryResult struct {
	CategoryID  string         `json:"category_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	TotalVotes  int            `json:"total_votes"`
	Options     []OptionResult `json:"options"`
	Leading     *OptionResult  `json:"leading,omitempty"`
}

type ResultsSummary struct {
	TotalVotes    int              `json:"total_votes"`
	Categories    int              `json:"categories"`
	Participation int              `json:"participation"`
	Results       []CategoryResult `json:"results"`
}
