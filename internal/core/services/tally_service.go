package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

type tallyService struct {
	catalog  domain.Catalog
	voteRepo ports.VoteRepository
}

func NewTallyService(catalog domain.Catalog, voteRepo ports.VoteRepository) ports.TallyService {
	return &tallyService{
		catalog:  catalog,
		voteRepo: voteRepo,
	}
}

func (s *tallyService) Summary(ctx context.Context) (*domain.ResultsSummary, error) {
	votes, err := s.voteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	summary := Tally(s.catalog, votes)
	return &summary, nil
}

func (s *tallyService) CategoryResult(ctx context.Context, categoryID string) (*domain.CategoryResult, error) {
	cat, ok := s.catalog.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, categoryID)
	}

	votes, err := s.voteRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for %s: %w", categoryID, err)
	}

	result := TallyCategory(cat, votes)
	return &result, nil
}

// Tally ranks every category of the catalog against the given records.
func Tally(catalog domain.Catalog, votes []domain.VoteRecord) domain.ResultsSummary {
	categories := catalog.Categories()
	summary := domain.ResultsSummary{
		TotalVotes:    len(votes),
		Categories:    len(categories),
		Participation: Participation(len(votes)),
		Results:       make([]domain.CategoryResult, 0, len(categories)),
	}
	for _, cat := range categories {
		summary.Results = append(summary.Results, TallyCategory(cat, votes))
	}
	return summary
}

// TallyCategory counts the records of one category. Options are sorted by
// votes, descending; ties keep catalog order. Records whose option is not in
// the category count towards the total only.
func TallyCategory(cat domain.VotingCategory, votes []domain.VoteRecord) domain.CategoryResult {
	counts := make(map[string]int, len(cat.Options))
	total := 0
	for _, v := range votes {
		if v.CategoryID != cat.ID {
			continue
		}
		total++
		counts[v.OptionID]++
	}

	options := make([]domain.OptionResult, 0, len(cat.Options))
	for _, opt := range cat.Options {
		options = append(options, domain.OptionResult{
			VoteOption: opt,
			Votes:      counts[opt.ID],
			Percentage: Percentage(counts[opt.ID], total),
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Votes > options[j].Votes
	})

	result := domain.CategoryResult{
		CategoryID:  cat.ID,
		Title:       cat.Title,
		Description: cat.Description,
		TotalVotes:  total,
		Options:     options,
	}
	if total > 0 && len(options) > 0 {
		leading := options[0]
		result.Leading = &leading
	}
	return result
}

// Percentage is votes/total as a percentage with one decimal place, 0 when
// total is 0.
func Percentage(votes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*1000) / 10
}

// Participation is a display figure against a notional electorate of 1000
// records. It does not measure anything.
func Participation(records int) int {
	if records <= 0 {
		return 0
	}
	return int(math.Round(float64(records) / 1000 * 100))
}
