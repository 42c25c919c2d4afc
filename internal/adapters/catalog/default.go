package catalog

import "github.com/vncsmyrnk/voteportal/internal/core/domain"

var defaultCategories = []domain.VotingCategory{
	{
		ID:          "president",
		Title:       "Presidential Election",
		Description: "Choose your preferred candidate for President",
		Options: []domain.VoteOption{
			{ID: "candidate-a", Name: "Alex Johnson", Party: "Progressive Party"},
			{ID: "candidate-b", Name: "Sarah Chen", Party: "Unity Alliance"},
			{ID: "candidate-c", Name: "Michael Torres", Party: "Reform Coalition"},
			{ID: "candidate-d", Name: "Emma Williams", Party: "Green Future"},
		},
	},
	{
		ID:          "mayor",
		Title:       "Mayor Election",
		Description: "Select your choice for City Mayor",
		Options: []domain.VoteOption{
			{ID: "mayor-a", Name: "David Park", Party: "Independent"},
			{ID: "mayor-b", Name: "Lisa Rodriguez", Party: "Citizens First"},
			{ID: "mayor-c", Name: "James Mitchell", Party: "Progress Alliance"},
		},
	},
	{
		ID:          "proposition",
		Title:       "Education Funding Proposition",
		Description: "Should the city increase education funding by 15%?",
		Options: []domain.VoteOption{
			{ID: "prop-yes", Name: "Yes - Support Education", Party: "Pro-Education"},
			{ID: "prop-no", Name: "No - Maintain Current", Party: "Fiscal Conservative"},
		},
	},
}

// Default returns the built-in demo catalog.
func Default() domain.Catalog {
	c, err := domain.NewCatalog(defaultCategories)
	if err != nil {
		panic(err)
	}
	return c
}
