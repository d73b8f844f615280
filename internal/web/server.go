// Package web serves the fuel form as a server-rendered page and a small JSON API.
package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gasstation/internal/ctxlog"
	"gasstation/internal/form"
	"gasstation/internal/station"

	"github.com/gorilla/mux"
)

const (
	supplyLabel       = "Fuel dispensers"
	supplyPlaceholder = "1, 2, 3, 4, 5"
	supplyHint        = "Indicate the amount of fuel available at each pump."

	costLabel       = "Fuel consumption"
	costPlaceholder = "5, 4, 3, 2, 1"
	costHint        = "Indicate the amount of fuel needed to advance to the next gas station."
)

// FieldView is what the template needs to render one input.
type FieldView struct {
	ID          string
	Name        string
	Label       string
	Placeholder string
	Value       string
	Hint        string
	Message     string
	Failed      bool
}

// PageData is the template input for the whole page.
type PageData struct {
	Supply FieldView
	Cost   FieldView

	// Disabled mirrors form.HasError, so an untouched empty form starts blocked.
	Disabled bool

	HasResult bool
	Result    string

	Alert         bool
	AlertTitle    string
	AlertSubtitle string

	Version string

	// Share text: meta description when a result is shown.
	ShareDescription string
}

// Server renders the form and answers the API.
type Server struct {
	tpl     *template.Template
	logger  *slog.Logger
	version string
}

// New parses the page template once; the returned Server is safe for
// concurrent use.
func New(logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		tpl:     template.Must(template.New("page").Parse(pageHTML)),
		logger:  logger,
		version: version,
	}
}

// Handler returns the routed handler with request logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/calc", s.handleCalc).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/solve", s.handleSolve).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := form.New()
	if q.Has("supply") {
		f.SetSupply(strings.TrimSpace(q.Get("supply")))
	}
	if q.Has("cost") {
		f.SetCost(strings.TrimSpace(q.Get("cost")))
	}

	// A URL carrying both lists shows its result, so links can be shared.
	if q.Get("supply") != "" && q.Get("cost") != "" {
		if _, err := f.Submit(); err != nil {
			ctxlog.FromContext(r.Context()).Debug("submit rejected", "err", err)
		}
	}

	s.render(w, r, f)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	f := form.New()
	f.SetSupply(strings.TrimSpace(r.FormValue("supply")))
	f.SetCost(strings.TrimSpace(r.FormValue("cost")))

	if f.HasError() {
		s.render(w, r, f)
		return
	}

	// Redirect to GET so the URL reflects the calculation.
	http.Redirect(w, r, buildCalcURL(f.Supply.Value, f.Cost.Value), http.StatusFound)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, f *form.Form) {
	data := PageData{
		Supply:        fieldView("fuel-dispenser", "supply", supplyLabel, supplyPlaceholder, supplyHint, f.Supply),
		Cost:          fieldView("fuel-cost", "cost", costLabel, costPlaceholder, costHint, f.Cost),
		Disabled:      f.HasError(),
		Alert:         f.Alert,
		AlertTitle:    form.AlertTitle,
		AlertSubtitle: form.AlertSubtitle,
		Version:       s.version,
	}
	if f.Result != nil {
		data.HasResult = true
		data.Result = station.Label(*f.Result)
		data.ShareDescription = "Fuel dispensers " + f.Supply.Value + " / consumption " + f.Cost.Value + ": " + data.Result
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		ctxlog.FromContext(r.Context()).Error("render page", "err", err)
	}
}

func fieldView(id, name, label, placeholder, hint string, f form.Field) FieldView {
	return FieldView{
		ID:          id,
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Value:       f.Value,
		Hint:        hint,
		Message:     f.Message(hint),
		Failed:      f.Failed(),
	}
}

// buildCalcURL returns "/?supply=...&cost=...".
func buildCalcURL(supply, cost string) string {
	v := url.Values{}
	v.Set("supply", supply)
	v.Set("cost", cost)
	return "/?" + v.Encode()
}
