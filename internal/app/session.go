// Package app wires the state of one voting session. Everything that would
// otherwise be process-wide (the record store, the form, the active view)
// lives on a Session and is handed to the components that need it.
package app

import (
	"time"

	"github.com/vncsmyrnk/voteportal/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
	"github.com/vncsmyrnk/voteportal/internal/core/services"
)

type Options struct {
	Clock             ports.Clock
	Location          *time.Location
	ConfirmationDelay time.Duration
}

type Session struct {
	Catalog   domain.Catalog
	Votes     ports.VoteRepository
	Capture   ports.CaptureService
	Tally     ports.TallyService
	Analytics ports.AnalyticsService
	Views     ports.ViewService
}

func NewSession(catalog domain.Catalog, opts Options) *Session {
	votes := memory.NewVoteRepository()

	return &Session{
		Catalog:   catalog,
		Votes:     votes,
		Capture:   services.NewCaptureService(catalog, votes, opts.Clock, opts.ConfirmationDelay),
		Tally:     services.NewTallyService(catalog, votes),
		Analytics: services.NewAnalyticsService(catalog, votes, opts.Location),
		Views:     services.NewViewService(),
	}
}
