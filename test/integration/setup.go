package integration

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/vncsmyrnk/voteportal/internal/adapters/catalog"
	handler "github.com/vncsmyrnk/voteportal/internal/adapters/handler/http"
	"github.com/vncsmyrnk/voteportal/internal/app"
)

const confirmationDelay = 3 * time.Second

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type TestApp struct {
	Session *app.Session
	Server  *httptest.Server
	Client  *http.Client
	Clock   *fakeClock
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 11, 5, 14, 30, 0, 0, time.UTC)}
	session := app.NewSession(catalog.Default(), app.Options{
		Clock:             clock,
		Location:          time.UTC,
		ConfirmationDelay: confirmationDelay,
	})

	pageHandler := handler.NewPageHandler(handler.PageServices{
		Catalog:           session.Catalog,
		Capture:           session.Capture,
		Tally:             session.Tally,
		Analytics:         session.Analytics,
		Views:             session.Views,
		ConfirmationDelay: confirmationDelay,
	})
	router := handler.NewHandler(
		pageHandler,
		handler.NewCatalogHandler(session.Catalog),
		handler.NewBallotHandler(session.Capture),
		handler.NewResultsHandler(session.Tally),
		handler.NewAnalyticsHandler(session.Analytics),
		handler.NewViewHandler(session.Views),
	)

	server := httptest.NewServer(router)

	return &TestApp{
		Session: session,
		Server:  server,
		Client:  server.Client(),
		Clock:   clock,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
}
