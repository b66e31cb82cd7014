package wcaprofile

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"wca-userinfo/lib/wca"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("services/wcaprofile")
var profilesServed, _ = meter.Int64Counter("wcaprofile.profiles_served")
var profilesFailed, _ = meter.Int64Counter("wcaprofile.profiles_failed")

// ProfileSource is anything that can produce the profile of a WCA ID,
// *Client being the real one.
type ProfileSource interface {
	GetProfile(ctx context.Context, wcaID string) (wca.Profile, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	source ProfileSource
}

// NewHandler serves `GET /{wca_id}`, answering with the profile as JSON or
// with `{"error": "..."}` and a 400.
func NewHandler(source ProfileSource) http.Handler {
	h := handler{source: source}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.missingWcaID)
	r.Get("/{wca_id}", h.getProfile)
	return r
}

func (h handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handler:getProfile")
	defer span.End()

	wcaID := chi.URLParam(r, "wca_id")
	profile, err := h.source.GetProfile(ctx, wcaID)
	if err != nil {
		profilesFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", failureReason(err))))
		slog.WarnContext(ctx, "failed to get profile", "wca_id", wcaID, "err", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	profilesServed.Add(ctx, 1)
	writeJSON(ctx, w, http.StatusOK, profile)
}

func (h handler) missingWcaID(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: ErrMissingWcaID.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, value any) {
	buff, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal response", "err", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(buff)
	if err != nil {
		slog.WarnContext(ctx, "failed to write response", "err", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(
			r.Context(), "handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
