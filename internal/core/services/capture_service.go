package services

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

// DefaultConfirmationDelay is how long the "submitted" notice stays up.
const DefaultConfirmationDelay = 3 * time.Second

type captureService struct {
	catalog           domain.Catalog
	voteRepo          ports.VoteRepository
	clock             ports.Clock
	confirmationDelay time.Duration

	mu          sync.Mutex
	selections  map[string]string
	voter       domain.VoterInfo
	submittedAt time.Time
}

func NewCaptureService(catalog domain.Catalog, voteRepo ports.VoteRepository, clock ports.Clock, confirmationDelay time.Duration) ports.CaptureService {
	if clock == nil {
		clock = SystemClock{}
	}
	if confirmationDelay <= 0 {
		confirmationDelay = DefaultConfirmationDelay
	}
	return &captureService{
		catalog:           catalog,
		voteRepo:          voteRepo,
		clock:             clock,
		confirmationDelay: confirmationDelay,
		selections:        make(map[string]string),
	}
}

func (s *captureService) Select(ctx context.Context, categoryID, optionID string) error {
	if err := s.catalog.Validate(categoryID, optionID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[categoryID] = optionID
	return nil
}

func (s *captureService) UpdateVoterInfo(ctx context.Context, info domain.VoterInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voter = info
}

// Submit appends one record per answered category, in catalog order. A
// failed validation leaves the form untouched. There is no rollback: records
// appended before a repository failure stay in the store.
func (s *captureService) Submit(ctx context.Context) ([]domain.VoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if missing := s.voter.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrMissingVoterInfo, strings.Join(missing, ", "))
	}
	if len(s.selections) == 0 {
		return nil, domain.ErrNoSelections
	}

	records := make([]domain.VoteRecord, 0, len(s.selections))
	for _, cat := range s.catalog.Categories() {
		optionID, ok := s.selections[cat.ID]
		if !ok {
			continue
		}

		vote := &domain.VoteRecord{
			ID:         uuid.NewString(),
			CategoryID: cat.ID,
			OptionID:   optionID,
			VoterInfo:  s.voter,
			Timestamp:  s.clock.Now(),
		}
		if err := s.voteRepo.Append(ctx, vote); err != nil {
			return records, fmt.Errorf("failed to record vote for %s: %w", cat.ID, err)
		}
		records = append(records, *vote)
	}

	s.clear()
	s.submittedAt = s.clock.Now()

	return records, nil
}

func (s *captureService) Form(ctx context.Context) domain.Ballot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Ballot{
		Selections: maps.Clone(s.selections),
		VoterInfo:  s.voter,
		Submitted:  !s.submittedAt.IsZero() && s.clock.Now().Before(s.submittedAt.Add(s.confirmationDelay)),
	}
}

func (s *captureService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

func (s *captureService) clear() {
	s.selections = make(map[string]string)
	s.voter = domain.VoterInfo{}
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
