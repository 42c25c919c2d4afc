package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/voteportal/internal/adapters/catalog"
	"github.com/vncsmyrnk/voteportal/internal/adapters/handler/http"
	"github.com/vncsmyrnk/voteportal/internal/app"
	"github.com/vncsmyrnk/voteportal/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Parse("voteportal", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	votingCatalog, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(votingCatalog, app.Options{
		Location:          loc,
		ConfirmationDelay: cfg.ConfirmationDelay,
	})

	// Initialize Handlers
	pageHandler := http.NewPageHandler(http.PageServices{
		Catalog:           session.Catalog,
		Capture:           session.Capture,
		Tally:             session.Tally,
		Analytics:         session.Analytics,
		Views:             session.Views,
		ConfirmationDelay: cfg.ConfirmationDelay,
	})
	catalogHandler := http.NewCatalogHandler(session.Catalog)
	ballotHandler := http.NewBallotHandler(session.Capture)
	resultsHandler := http.NewResultsHandler(session.Tally)
	analyticsHandler := http.NewAnalyticsHandler(session.Analytics)
	viewHandler := http.NewViewHandler(session.Views)

	handler := http.NewHandler(pageHandler, catalogHandler, ballotHandler, resultsHandler, analyticsHandler, viewHandler)
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("voting session started", "addr", cfg.Addr, "categories", votingCatalog.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
