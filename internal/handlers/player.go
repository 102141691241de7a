package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/game"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionRequest is the body of a dispatch request.
type ActionRequest struct {
	Action catalog.ActionID `json:"action"`
}

// NameRequest is the body of a naming request.
type NameRequest struct {
	Name string `json:"name"`
}

// TextRequest is the body of a free-form text request.
type TextRequest struct {
	Text string `json:"text"`
}

// PlayerHandler serves the command-style entry points of the game
// service over HTTP.
//
// Routes:
//
//	GET  /v1/player/{id}            - Raw persisted state (debug view)
//	POST /v1/player/{id}/onboard    - Create or reset to defaults
//	POST /v1/player/{id}/name       - Complete naming
//	POST /v1/player/{id}/reset      - Reset the run
//	POST /v1/player/{id}/action     - Dispatch an action
//	POST /v1/player/{id}/text       - Free-form text input
//	GET  /v1/player/{id}/inventory  - Inventory view
//	GET  /v1/player/{id}/stats      - Stats view
type PlayerHandler struct {
	service *game.Service
	logger  *slog.Logger
}

func NewPlayerHandler(service *game.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PlayerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/player"), "/")
	parts := strings.SplitN(path, "/", 2)
	playerID := parts[0]
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	var op string
	if len(parts) == 2 {
		op = parts[1]
	}

	switch {
	case op == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, playerID)
	case op == "onboard" && r.Method == http.MethodPost:
		h.handleOnboard(w, r, playerID)
	case op == "name" && r.Method == http.MethodPost:
		h.handleName(w, r, playerID)
	case op == "reset" && r.Method == http.MethodPost:
		h.handleReset(w, r, playerID)
	case op == "action" && r.Method == http.MethodPost:
		h.handleAction(w, r, playerID)
	case op == "text" && r.Method == http.MethodPost:
		h.handleText(w, r, playerID)
	case op == "inventory" && r.Method == http.MethodGet:
		h.handleInventory(w, r, playerID)
	case op == "stats" && r.Method == http.MethodGet:
		h.handleStats(w, r, playerID)
	default:
		h.logger.Warn("Unknown player route", "method", r.Method, "path", r.URL.Path)
		h.writeError(w, http.StatusNotFound, "Unknown player operation")
	}
}

func (h *PlayerHandler) handleGet(w http.ResponseWriter, r *http.Request, playerID string) {
	ps, err := h.service.GetPlayer(r.Context(), playerID)
	if err != nil {
		h.logger.Error("Failed to load player", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load player state")
		return
	}
	h.writeJSON(w, http.StatusOK, ps)
}

func (h *PlayerHandler) handleOnboard(w http.ResponseWriter, r *http.Request, playerID string) {
	_, out, err := h.service.Onboard(r.Context(), playerID)
	if err != nil {
		h.logger.Error("Failed to onboard player", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to onboard player")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleName(w http.ResponseWriter, r *http.Request, playerID string) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'name' field.")
		return
	}

	_, out, err := h.service.CompleteNaming(r.Context(), playerID, strings.TrimSpace(req.Name))
	if err != nil {
		h.logger.Error("Failed to name player", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save player state")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleReset(w http.ResponseWriter, r *http.Request, playerID string) {
	_, out, err := h.service.Reset(r.Context(), playerID)
	if err != nil {
		h.logger.Error("Failed to reset player", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to reset player")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleAction(w http.ResponseWriter, r *http.Request, playerID string) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'action' field.")
		return
	}

	out, err := h.service.Dispatch(r.Context(), playerID, req.Action)
	if err != nil {
		h.logger.Error("Failed to dispatch action", "player", playerID, "action", req.Action, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleText(w http.ResponseWriter, r *http.Request, playerID string) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'text' field.")
		return
	}

	out, err := h.service.HandleText(r.Context(), playerID, strings.TrimSpace(req.Text))
	if err != nil {
		h.logger.Error("Failed to handle text", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleInventory(w http.ResponseWriter, r *http.Request, playerID string) {
	out, err := h.service.InventoryView(r.Context(), playerID)
	if err != nil {
		h.logger.Error("Failed to load inventory", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load inventory")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) handleStats(w http.ResponseWriter, r *http.Request, playerID string) {
	out, err := h.service.StatsView(r.Context(), playerID)
	if err != nil {
		h.logger.Error("Failed to load stats", "player", playerID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *PlayerHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *PlayerHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}
