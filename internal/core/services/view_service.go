package services

import (
	"context"
	"sync"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

type viewService struct {
	mu     sync.Mutex
	active domain.View
}

func NewViewService() ports.ViewService {
	return &viewService{active: domain.ViewVote}
}

func (s *viewService) Active(ctx context.Context) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *viewService) Select(ctx context.Context, name string) (domain.View, error) {
	v, err := domain.ParseView(name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = v
	return v, nil
}
