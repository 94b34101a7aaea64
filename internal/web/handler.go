// Package web exposes the room catalog and daily readings over HTTP.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/cory-johannsen/liminal/internal/atmosphere"
	"github.com/cory-johannsen/liminal/internal/catalog"
	"github.com/cory-johannsen/liminal/internal/observability"
	"github.com/cory-johannsen/liminal/internal/seeded"
)

// SeedSpanName names the span recorded around each seed derivation.
const SeedSpanName = "atmosphere.read"

// Handler serves the liminal HTTP API.
type Handler struct {
	catalog *catalog.Catalog
	sel     *seeded.Selector
	atmos   *atmosphere.Service
	logger  *zap.Logger
}

// NewHandler creates a Handler.
//
// Precondition: cat, sel, and logger must be non-nil.
func NewHandler(cat *catalog.Catalog, sel *seeded.Selector, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: cat,
		sel:     sel,
		atmos:   atmosphere.NewService(sel),
		logger:  logger,
	}
}

// Routes returns the fully wrapped HTTP handler.
//
// Routes:
//
//	GET /api/seed?room=&date=  daily reading
//	GET /api/rooms             room summaries
//	GET /api/rooms/{slug}      room detail with daily line and neighbors
//	GET /healthz               liveness
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/seed", h.handleSeed)
	mux.HandleFunc("GET /api/rooms", h.handleRooms)
	mux.HandleFunc("GET /api/rooms/{slug}", h.handleRoom)
	mux.HandleFunc("GET /healthz", h.handleHealth)

	var next http.Handler = mux
	next = accessLog(h.logger, next)
	next = recoverer(h.logger, next)
	next = requestID(next)
	return otelhttp.NewHandler(next, "liminal",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// handleSeed derives the reading for the room and date query parameters.
// Missing or empty parameters fall back to "default" and today's date; the
// date is not validated.
func (h *Handler) handleSeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	_, span := observability.Tracer("web").Start(r.Context(), SeedSpanName)
	reading := h.atmos.Read(q.Get("room"), q.Get("date"))
	span.SetAttributes(
		attribute.String("liminal.room", reading.Room),
		attribute.String("liminal.date", reading.Date),
		attribute.Int64("liminal.seed", int64(reading.Seed)),
		attribute.Int("liminal.variant_index", reading.VariantIndex),
	)
	span.End()
	writeJSON(h.logger, w, http.StatusOK, reading)
}

type roomSummary struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Exits []string `json:"exits"`
}

func summarize(r catalog.Room) roomSummary {
	return roomSummary{Slug: r.Slug, Title: r.Title, Exits: r.Exits}
}

func (h *Handler) handleRooms(w http.ResponseWriter, _ *http.Request) {
	rooms := h.catalog.Rooms()
	out := make([]roomSummary, len(rooms))
	for i, r := range rooms {
		out[i] = summarize(r)
	}
	writeJSON(h.logger, w, http.StatusOK, out)
}

type roomDetail struct {
	Slug      string            `json:"slug"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Exits     []string          `json:"exits"`
	Variants  []catalog.Variant `json:"variants"`
	Date      string            `json:"date"`
	Daily     *catalog.Variant  `json:"daily,omitempty"`
	Neighbors []roomSummary     `json:"neighbors"`
}

// handleRoom renders one room with today's variant line and a random sample
// of its neighbors. Rooms without variants omit the daily line.
func (h *Handler) handleRoom(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	room, ok := h.catalog.Lookup(slug)
	if !ok {
		writeError(h.logger, w, http.StatusNotFound, "room not found")
		return
	}

	detail := roomDetail{
		Slug:     room.Slug,
		Title:    room.Title,
		Content:  room.Content,
		Exits:    room.Exits,
		Variants: room.Variants,
		Date:     h.sel.Today(),
	}

	daily, err := seeded.DailyVariant(h.sel, room.Slug, room.Variants)
	switch {
	case err == nil:
		detail.Daily = &daily
	case errors.Is(err, seeded.ErrNoVariants):
		h.logger.Debug("room has no variants", zap.String("room", room.Slug))
	default:
		h.logger.Error("selecting daily variant", zap.String("room", room.Slug), zap.Error(err))
		writeError(h.logger, w, http.StatusInternalServerError, "internal error")
		return
	}

	neighbors := h.catalog.Neighbors(room.Slug, catalog.DefaultNeighborLimit)
	detail.Neighbors = make([]roomSummary, len(neighbors))
	for i, n := range neighbors {
		detail.Neighbors[i] = summarize(n)
	}

	writeJSON(h.logger, w, http.StatusOK, detail)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, map[string]any{
		"status": "ok",
		"rooms":  h.catalog.Len(),
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(logger *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(logger, w, status, errorBody{Error: msg})
}

// writeJSON sends v with status. The header is already out when encoding
// runs, so a failure (usually a departed client) can only be logged.
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("writing response body", zap.Int("status", status), zap.Error(err))
	}
}
