package ports

import (
	"context"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

type TallyService interface {
	Summary(ctx context.Context) (*domain.ResultsSummary, error)
	CategoryResult(ctx context.Context, categoryID string) (*domain.CategoryResult, error)
}

type AnalyticsService interface {
	Analytics(ctx context.Context) (*domain.Analytics, error)
}
