package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/api/shared"
	"github.com/jsvoboda/accounts-api/internal/service"
)

// Default paging parameters for the list endpoint when the query string
// omits them.
const (
	defaultPageIndex = 0
	defaultPageSize  = 20
)

// AccountHandler handles account-related API requests.
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := h.accountService.Create(r.Context(), req.DisplayName, req.Username, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toAccountResponse(account))
}

// GetByID handles GET /api/accounts/{id}.
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAccountResponse(account))
}

// List handles GET /api/accounts?page=&size=.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	pageIndex, err := queryInt(r, "page", defaultPageIndex)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
		return
	}
	pageSize, err := queryInt(r, "size", defaultPageSize)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid size parameter")
		return
	}

	page, err := h.accountService.ListPage(r.Context(), pageIndex, pageSize)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAccountPageResponse(page))
}

// Update handles PUT /api/accounts/{id}.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	principal, ok := shared.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("no principal in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := h.accountService.Update(r.Context(), id, principal, req.DisplayName, req.Username, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAccountResponse(account))
}

// Delete handles DELETE /api/accounts/{id}.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	principal, ok := shared.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("no principal in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	if err := h.accountService.Delete(r.Context(), id, principal); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID extracts and parses the {id} path parameter, writing an error
// response on failure.
func (h *AccountHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Debug("invalid account id in path", slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid account ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
