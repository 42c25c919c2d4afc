package services

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

// recentHourSlots is how many hours the hourly breakdown shows.
const recentHourSlots = 8

type analyticsService struct {
	catalog  domain.Catalog
	voteRepo ports.VoteRepository
	location *time.Location
}

// NewAnalyticsService buckets timestamps by hour in loc; a nil loc means
// time.Local.
func NewAnalyticsService(catalog domain.Catalog, voteRepo ports.VoteRepository, loc *time.Location) ports.AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &analyticsService{
		catalog:  catalog,
		voteRepo: voteRepo,
		location: loc,
	}
}

func (s *analyticsService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	votes, err := s.voteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	a := Analyze(s.catalog, votes, s.location)
	return &a, nil
}

// Analyze derives the secondary aggregates from the records. Ties for the
// top district go to the lexicographically smallest district, ties for the
// peak hour to the earliest hour.
func Analyze(catalog domain.Catalog, votes []domain.VoteRecord, loc *time.Location) domain.Analytics {
	if loc == nil {
		loc = time.Local
	}

	a := domain.Analytics{
		TotalRecords:   len(votes),
		Districts:      make(map[string]int),
		Hourly:         make(map[int]int),
		CompletionRate: CompletionRate(len(votes)),
	}
	for _, v := range votes {
		a.Districts[v.VoterInfo.District]++
		a.Hourly[v.Timestamp.In(loc).Hour()]++
	}

	districts := slices.Sorted(maps.Keys(a.Districts))
	for _, d := range districts {
		if a.TopDistrict == nil || a.Districts[d] > a.TopDistrict.Votes {
			a.TopDistrict = &domain.DistrictCount{District: d, Votes: a.Districts[d]}
		}
	}

	hours := slices.Sorted(maps.Keys(a.Hourly))
	for _, h := range hours {
		if a.PeakHour == nil || a.Hourly[h] > a.PeakHour.Votes {
			a.PeakHour = &domain.HourCount{Hour: h, Votes: a.Hourly[h]}
		}
	}
	if len(hours) > recentHourSlots {
		hours = hours[len(hours)-recentHourSlots:]
	}
	a.RecentHours = make([]domain.HourCount, 0, len(hours))
	for _, h := range hours {
		a.RecentHours = append(a.RecentHours, domain.HourCount{Hour: h, Votes: a.Hourly[h]})
	}

	a.Flow = Flow(catalog, votes)
	return a
}

// Flow lists every option in catalog order with its unrounded share of the
// category's records.
func Flow(catalog domain.Catalog, votes []domain.VoteRecord) []domain.CategoryFlow {
	categories := catalog.Categories()
	flows := make([]domain.CategoryFlow, 0, len(categories))
	for _, cat := range categories {
		counts := make(map[string]int, len(cat.Options))
		total := 0
		for _, v := range votes {
			if v.CategoryID == cat.ID {
				total++
				counts[v.OptionID]++
			}
		}

		flow := domain.CategoryFlow{
			CategoryID: cat.ID,
			Title:      cat.Title,
			TotalVotes: total,
			Options:    make([]domain.OptionFlow, 0, len(cat.Options)),
		}
		for _, opt := range cat.Options {
			pct := 0.0
			if total > 0 {
				pct = float64(counts[opt.ID]) / float64(total) * 100
			}
			flow.Options = append(flow.Options, domain.OptionFlow{
				VoteOption: opt,
				Votes:      counts[opt.ID],
				Percentage: pct,
			})
		}
		flows = append(flows, flow)
	}
	return flows
}

// CompletionRate is placeholder copy for the analytics page: it has no
// denominator of eligible voters and is 83 for any non-empty store.
func CompletionRate(records int) int {
	if records <= 0 {
		return 0
	}
	return int(math.Round(float64(records) / (float64(records) * 1.2) * 100))
}
