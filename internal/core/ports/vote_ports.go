package ports

import (
	"context"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

// VoteRepository is the append-only record store of a session.
type VoteRepository interface {
	Append(ctx context.Context, vote *domain.VoteRecord) error
	List(ctx context.Context) ([]domain.VoteRecord, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.VoteRecord, error)
	Count(ctx context.Context) (int, error)
}

type CaptureService interface {
	Select(ctx context.Context, categoryID, optionID string) error
	UpdateVoterInfo(ctx context.Context, info domain.VoterInfo)
	Submit(ctx context.Context) ([]domain.VoteRecord, error)
	Form(ctx context.Context) domain.Ballot
	// Reset clears selections and voter info without recording anything.
	Reset(ctx context.Context)
}
