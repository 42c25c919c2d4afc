package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	pageHandler *PageHandler,
	catalogHandler *CatalogHandler,
	ballotHandler *BallotHandler,
	resultsHandler *ResultsHandler,
	analyticsHandler *AnalyticsHandler,
	viewHandler *ViewHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/", pageHandler.Index)
	r.Post("/ballot", pageHandler.SubmitBallot)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", catalogHandler.GetCategories)
		r.Get("/districts", catalogHandler.GetDistricts)

		r.Route("/ballot", func(r chi.Router) {
			r.Get("/", ballotHandler.GetBallot)
			r.Delete("/", ballotHandler.ResetBallot)
			r.Put("/voter", ballotHandler.UpdateVoter)
			r.Put("/selections/{categoryID}", ballotHandler.Select)
			r.Post("/submit", ballotHandler.Submit)
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/", resultsHandler.GetResults)
			r.Get("/{categoryID}", resultsHandler.GetCategoryResult)
		})

		r.Get("/analytics", analyticsHandler.GetAnalytics)

		r.Get("/view", viewHandler.GetView)
		r.Put("/view", viewHandler.SelectView)
	})

	return r
}
