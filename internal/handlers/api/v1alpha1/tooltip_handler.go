// Package v1alpha1 exposes the tooltip service over JSON HTTP.
package v1alpha1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
	"github.com/hexbench/tooltip-api/internal/orchestrators/tooltip"
	"github.com/hexbench/tooltip-api/internal/pkg/idgen"
)

const requestIDHeader = "X-Request-Id"

// Config holds the dependencies for the tooltip handler
type Config struct {
	Service     tooltip.Service
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 tooltip API.
type Handler struct {
	service tooltip.Service
	idGen   idgen.Generator
}

// NewHandler creates a new tooltip API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		service: cfg.Service,
		idGen:   cfg.IDGenerator,
	}, nil
}

// RegisterRoutes mounts the API under /api/v1alpha1 plus the health probe.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1alpha1").Subrouter()
	api.HandleFunc("/units", h.ListUnits).Methods(http.MethodGet)
	api.HandleFunc("/items", h.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}/tooltip", h.GetTooltip).Methods(http.MethodGet)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

// tooltipResponse is the wire shape of a resolved tooltip request.
type tooltipResponse struct {
	Unit         *entities.UnitDefinition  `json:"unit"`
	Stats        entities.CombatStats      `json:"stats"`
	Tooltip      *entities.ResolvedTooltip `json:"tooltip"`
	SkippedItems []string                  `json:"skippedItems,omitempty"`
	FromCache    bool                      `json:"fromCache"`
}

type listUnitsResponse struct {
	Units []*entities.UnitDefinition `json:"units"`
}

type listItemsResponse struct {
	Items []*entities.ItemDefinition `json:"items"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetTooltip handles GET /api/v1alpha1/units/{id}/tooltip.
func (h *Handler) GetTooltip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := h.requestID(w, r)
	unitID := mux.Vars(r)["id"]
	query := r.URL.Query()

	star := int64(1)
	if raw := query.Get("star"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			h.writeError(ctx, w, requestID,
				errors.InvalidArgumentf("invalid star level %q", raw))
			return
		}
		star = parsed
	}

	var itemIDs []string
	if raw := query.Get("items"); raw != "" {
		itemIDs = strings.Split(raw, ",")
	}

	fullRange := query.Get("full_range") == "true"

	out, err := h.service.GetTooltip(ctx, &tooltip.GetTooltipInput{
		UnitID:    unitID,
		StarLevel: int32(star), // #nosec G115 // bounds-checked by ParseInt
		ItemIDs:   itemIDs,
		FullRange: fullRange,
	})
	if err != nil {
		h.writeError(ctx, w, requestID, err)
		return
	}

	slog.DebugContext(ctx, "resolved tooltip",
		"request_id", requestID,
		"unit_id", unitID,
		"star_level", out.Stats.StarLevel,
		"from_cache", out.FromCache)

	h.writeJSON(ctx, w, http.StatusOK, tooltipResponse{
		Unit:         out.Unit,
		Stats:        out.Stats,
		Tooltip:      out.Tooltip,
		SkippedItems: out.SkippedItems,
		FromCache:    out.FromCache,
	})
}

// ListUnits handles GET /api/v1alpha1/units.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := h.requestID(w, r)

	out, err := h.service.ListUnits(ctx, &tooltip.ListUnitsInput{})
	if err != nil {
		h.writeError(ctx, w, requestID, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, listUnitsResponse{Units: out.Units})
}

// ListItems handles GET /api/v1alpha1/items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := h.requestID(w, r)

	out, err := h.service.ListItems(ctx, &tooltip.ListItemsInput{})
	if err != nil {
		h.writeError(ctx, w, requestID, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, listItemsResponse{Items: out.Items})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// requestID echoes the client's request ID or mints one.
func (h *Handler) requestID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = h.idGen.Generate()
	}
	w.Header().Set(requestIDHeader, id)
	return id
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed",
			"request_id", requestID,
			"code", code.String(),
			"error", err)
	} else {
		slog.DebugContext(ctx, "request rejected",
			"request_id", requestID,
			"code", code.String(),
			"error", err)
	}

	h.writeJSON(ctx, w, status, errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}
