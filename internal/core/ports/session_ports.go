package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

type Clock interface {
	Now() time.Time
}

type ViewService interface {
	Active(ctx context.Context) domain.View
	Select(ctx context.Context, name string) (domain.View, error)
}
