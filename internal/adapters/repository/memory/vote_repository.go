package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

// voteRepository keeps the records of one session in insertion order. It
// only grows; records are copied in and out so callers cannot mutate them.
type voteRepository struct {
	mu    sync.RWMutex
	votes []domain.VoteRecord
	ids   map[string]struct{}
}

func NewVoteRepository() ports.VoteRepository {
	return &voteRepository{
		ids: make(map[string]struct{}),
	}
}

func (r *voteRepository) Append(ctx context.Context, vote *domain.VoteRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[vote.ID]; exists {
		return fmt.Errorf("failed to save vote %s: %w", vote.ID, domain.ErrDuplicateVote)
	}
	r.ids[vote.ID] = struct{}{}
	r.votes = append(r.votes, *vote)
	return nil
}

func (r *voteRepository) List(ctx context.Context) ([]domain.VoteRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	votes := make([]domain.VoteRecord, len(r.votes))
	copy(votes, r.votes)
	return votes, nil
}

func (r *voteRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.VoteRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var votes []domain.VoteRecord
	for _, v := range r.votes {
		if v.CategoryID == categoryID {
			votes = append(votes, v)
		}
	}
	return votes, nil
}

func (r *voteRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.votes), nil
}
