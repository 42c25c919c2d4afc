package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"percent": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	"percent1": func(f float64) string { return fmt.Sprintf("%.1f", f) },
	"hour":     func(h int) string { return fmt.Sprintf("%02d:00", h) },
	"district": domain.DistrictLabel,
	"capitalize": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"rank":  func(i int) int { return i + 1 },
	"ratio": ratio,
}).ParseFS(templateFS, "templates/page.html"))

// categoryField prefixes the form field holding a category's chosen option.
const categoryField = "category."

type PageServices struct {
	Catalog           domain.Catalog
	Capture           ports.CaptureService
	Tally             ports.TallyService
	Analytics         ports.AnalyticsService
	Views             ports.ViewService
	ConfirmationDelay time.Duration
}

type PageHandler struct {
	services PageServices
}

func NewPageHandler(services PageServices) *PageHandler {
	return &PageHandler{
		services: services,
	}
}

type pageData struct {
	View             domain.View
	Views            []domain.View
	Categories       []domain.VotingCategory
	Districts        []domain.District
	Ballot           domain.Ballot
	Notice           string
	RefreshSeconds   int
	Results          *domain.ResultsSummary
	Analytics        *domain.Analytics
	MaxDistrictVotes int
	MaxHourlyVotes   int
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("view"); name != "" {
		if _, err := h.services.Views.Select(r.Context(), name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	h.render(w, r, http.StatusOK, "")
}

// SubmitBallot applies the posted form to the session ballot and submits it.
// On a validation failure the page is rendered again with the entered values.
func (h *PageHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := h.services.Views.Select(ctx, string(domain.ViewVote)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	info := domain.VoterInfo{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		District: r.PostFormValue("district"),
	}
	if info.District != "" {
		if _, err := domain.ParseDistrict(info.District); err != nil {
			h.render(w, r, http.StatusBadRequest, "Please choose one of the listed districts.")
			return
		}
	}
	h.services.Capture.Reset(ctx)
	h.services.Capture.UpdateVoterInfo(ctx, info)

	for key, values := range r.PostForm {
		categoryID, ok := strings.CutPrefix(key, categoryField)
		if !ok || len(values) == 0 || values[0] == "" {
			continue
		}
		if err := h.services.Capture.Select(ctx, categoryID, values[0]); err != nil {
			h.render(w, r, http.StatusBadRequest, "That option is not on the ballot.")
			return
		}
	}

	records, err := h.services.Capture.Submit(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingVoterInfo):
			h.render(w, r, http.StatusUnprocessableEntity, "Please fill in all voter information fields.")
		case errors.Is(err, domain.ErrNoSelections):
			h.render(w, r, http.StatusUnprocessableEntity, "Please select at least one vote option.")
		default:
			slog.Error("failed to submit ballot", "error", err, "recorded", len(records))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	slog.Info("ballot submitted", "records", len(records))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, notice string) {
	ctx := r.Context()

	results, err := h.services.Tally.Summary(ctx)
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		http.Error(w, "failed to tally votes", http.StatusInternalServerError)
		return
	}
	analytics, err := h.services.Analytics.Analytics(ctx)
	if err != nil {
		slog.Error("failed to compute analytics", "error", err)
		http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}

	data := pageData{
		View:             h.services.Views.Active(ctx),
		Views:            domain.Views,
		Categories:       h.services.Catalog.Categories(),
		Districts:        domain.Districts,
		Ballot:           h.services.Capture.Form(ctx),
		Notice:           notice,
		RefreshSeconds:   int(math.Ceil(h.services.ConfirmationDelay.Seconds())),
		Results:          results,
		Analytics:        analytics,
		MaxDistrictVotes: maxCount(analytics.Districts),
		MaxHourlyVotes:   maxCount(analytics.Hourly),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// maxCount is the largest count in m, at least 1 so it can scale bars.
func maxCount[K comparable](m map[K]int) int {
	largest := 1
	for _, n := range m {
		if n > largest {
			largest = n
		}
	}
	return largest
}

func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
