package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

func newVote(id, categoryID string) *domain.VoteRecord {
	return &domain.VoteRecord{
		ID:         id,
		CategoryID: categoryID,
		OptionID:   "opt",
		VoterInfo:  domain.VoterInfo{Name: "A", Email: "a@b.c", District: "north"},
		Timestamp:  time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestVoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	require.NoError(t, repo.Append(ctx, newVote("1", "president")))
	require.NoError(t, repo.Append(ctx, newVote("2", "mayor")))
	require.NoError(t, repo.Append(ctx, newVote("3", "president")))

	votes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{votes[0].ID, votes[1].ID, votes[2].ID})

	president, err := repo.ListByCategory(ctx, "president")
	require.NoError(t, err)
	assert.Len(t, president, 2)

	none, err := repo.ListByCategory(ctx, "governor")
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestVoteRepositoryRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	require.NoError(t, repo.Append(ctx, newVote("1", "president")))
	err := repo.Append(ctx, newVote("1", "mayor"))
	assert.ErrorIs(t, err, domain.ErrDuplicateVote)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestVoteRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	vote := newVote("1", "president")
	require.NoError(t, repo.Append(ctx, vote))
	vote.OptionID = "changed"

	votes, err := repo.List(ctx)
	require.NoError(t, err)
	votes[0].CategoryID = "changed"

	votes, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "president", votes[0].CategoryID)
	assert.Equal(t, "opt", votes[0].OptionID)
}

func TestVoteRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewVoteRepository()

	assert.ErrorIs(t, repo.Append(ctx, newVote("1", "president")), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVoteRepositoryConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, newVote(fmt.Sprint(i), "president")))
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}
