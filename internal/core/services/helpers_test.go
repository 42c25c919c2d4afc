package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/vncsmyrnk/voteportal/internal/adapters/catalog"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

var testVoter = domain.VoterInfo{Name: "Ada Lovelace", Email: "ada@example.com", District: "north"}

var baseTime = time.Date(2024, 11, 5, 9, 15, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// failingRepository accepts the first `accept` records and fails afterwards.
type failingRepository struct {
	ports.VoteRepository
	accept int
}

var errStoreFull = errors.New("store full")

func (r *failingRepository) Append(ctx context.Context, vote *domain.VoteRecord) error {
	if r.accept <= 0 {
		return errStoreFull
	}
	r.accept--
	return r.VoteRepository.Append(ctx, vote)
}

func vote(categoryID, optionID, district string, at time.Time) domain.VoteRecord {
	return domain.VoteRecord{
		ID:         categoryID + "-" + optionID + "-" + at.Format(time.RFC3339Nano),
		CategoryID: categoryID,
		OptionID:   optionID,
		VoterInfo:  domain.VoterInfo{Name: "V", Email: "v@example.com", District: district},
		Timestamp:  at,
	}
}

func defaultCatalog() domain.Catalog {
	return catalog.Default()
}
