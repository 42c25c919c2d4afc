package domain

// Ballot is the uncommitted state of the vote form: at most one option per
// category plus the voter identity typed so far.
type Ballot struct {
	Selections map[string]string `json:"selections"`
	VoterInfo  VoterInfo         `json:"voter_info"`
	Submitted  bool              `json:"submitted"`
}

func (b Ballot) Selected(categoryID, optionID string) bool {
	return b.Selections[categoryID] == optionID
}
