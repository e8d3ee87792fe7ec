/*
handlers.go - HTTP API handlers for the shift ledger

PURPOSE:
  Exposes the conversation engine and the reports via REST. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Conversation:
    POST   /api/messages                      Deliver one chat message

  Roster:
    GET    /api/users                         List roster members

  Reports:
    GET    /api/reports/{code}/month/{month}  Monthly .xlsx download
    GET    /api/reports/{code}/year/{year}    Annual plain-text listing

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (dispatcher, aggregator)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown user code, empty period
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/shift-ledger/flow"
	"github.com/warp/shift-ledger/report"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Dispatcher *flow.Dispatcher
	Aggregator *report.Aggregator
	Roster     *shift.Roster
	Currency   string
}

// NewHandler creates a new handler over the conversation engine and reports.
func NewHandler(dispatcher *flow.Dispatcher, agg *report.Aggregator, roster *shift.Roster, currency string) *Handler {
	return &Handler{
		Dispatcher: dispatcher,
		Aggregator: agg,
		Roster:     roster,
		Currency:   currency,
	}
}

// =============================================================================
// CONVERSATION
// =============================================================================

// PostMessage delivers one inbound message and returns the replies.
// POST /api/messages
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ChatID == 0 {
		writeError(w, http.StatusBadRequest, "chat_id is required", nil)
		return
	}

	replies := h.Dispatcher.Handle(r.Context(), req.ChatID, req.Text)
	writeJSON(w, http.StatusOK, toReplyDTOs(replies))
}

// =============================================================================
// ROSTER
// =============================================================================

// ListUsers returns the roster.
// GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toUserDTOs(h.Roster.Entries()))
}

// =============================================================================
// REPORTS
// =============================================================================

// GetMonthlyReport streams the monthly workbook for a user.
// GET /api/reports/{code}/month/{month}
func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	code, ok := h.rosterCode(w, r)
	if !ok {
		return
	}

	month, err := shift.ValidateMonth(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	monthly, err := h.Aggregator.Monthly(r.Context(), code, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to aggregate month", err)
		return
	}
	if monthly.Empty() {
		writeError(w, http.StatusNotFound, "No records for this month", nil)
		return
	}

	artifact, err := report.RenderWorkbook(monthly, h.Currency)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render workbook", err)
		return
	}

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

// GetAnnualReport returns the annual work-day listing as plain text.
// GET /api/reports/{code}/year/{year}
func (h *Handler) GetAnnualReport(w http.ResponseWriter, r *http.Request) {
	code, ok := h.rosterCode(w, r)
	if !ok {
		return
	}

	year, err := shift.ValidateYear(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year (use YYYY)", err)
		return
	}

	annual, err := h.Aggregator.Annual(r.Context(), code, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to aggregate year", err)
		return
	}
	if annual.Empty() {
		writeError(w, http.StatusNotFound, "No records for this year", nil)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(annual.RenderText()))
}

// rosterCode resolves the {code} URL parameter against the roster.
func (h *Handler) rosterCode(w http.ResponseWriter, r *http.Request) (shift.UserCode, bool) {
	code := shift.UserCode(chi.URLParam(r, "code"))
	if !h.Roster.Contains(code) {
		writeError(w, http.StatusNotFound, "Unknown user code", nil)
		return "", false
	}
	return code, true
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
