package domain

import "time"

type VoterInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

// MissingFields lists the empty voter fields in form order.
func (v VoterInfo) MissingFields() []string {
	var missing []string
	if v.Name == "" {
		missing = append(missing, "name")
	}
	if v.Email == "" {
		missing = append(missing, "email")
	}
	if v.District == "" {
		missing = append(missing, "district")
	}
	return missing
}

type VoteRecord struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	OptionID   string    `json:"option_id"`
	VoterInfo  VoterInfo `json:"voter_info"`
	Timestamp  time.Time `json:"timestamp"`
}
