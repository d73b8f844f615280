package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"gasstation/internal/ctxlog"
	"gasstation/internal/form"
	"gasstation/internal/station"

	"github.com/dustin/go-humanize"
)

// fieldsErrorText heads a 422 caused by per-field problems, as opposed to
// the length mismatch alert.
const fieldsErrorText = "Invalid field values"

type solveRequest struct {
	Supply string `json:"supply"`
	Cost   string `json:"cost"`
}

type solveResponse struct {
	Start       int    `json:"start"`
	Feasible    bool   `json:"feasible"`
	Label       string `json:"label"`
	Stations    int    `json:"stations"`
	TotalSupply string `json:"total_supply"`
	TotalCost   string `json:"total_cost"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleSolve runs the form submit for a JSON body.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON payload"})
		return
	}

	f := form.New()
	f.SetSupply(req.Supply)
	f.SetCost(req.Cost)

	out, err := f.Submit()
	switch {
	case err == nil:
	case errors.Is(err, station.ErrLengthMismatch):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: form.AlertTitle, Detail: form.AlertSubtitle})
		return
	default:
		ctxlog.FromContext(r.Context()).Debug("solve rejected", "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: fieldsErrorText, Fields: fieldErrors(f)})
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		Start:       out.Start,
		Feasible:    out.Feasible(),
		Label:       out.Label(),
		Stations:    len(out.Supply),
		TotalSupply: humanize.Comma(int64(station.Sum(out.Supply))),
		TotalCost:   humanize.Comma(int64(station.Sum(out.Cost))),
	})
}

func fieldErrors(f *form.Form) map[string]string {
	m := make(map[string]string)
	if !f.Supply.Check.Valid {
		m["supply"] = f.Supply.Check.Message
	}
	if !f.Cost.Check.Valid {
		m["cost"] = f.Cost.Check.Message
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
