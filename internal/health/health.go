// Package health serves the liveness endpoint and records each probe in the health_check table.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/monapi/pkg/web"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable is returned when the database could not record a check.
var ErrUnavailable = errors.New("database unavailable")

// Check is a recorded health_check row.
type Check struct {
	ID        int64
	CreatedAt time.Time
}

// Recorder persists health checks.
type Recorder interface {
	Record(ctx context.Context) (*Check, error)
}

// PgStore implements Recorder using PostgreSQL.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// Record inserts a new health_check row and returns it.
func (p *PgStore) Record(ctx context.Context) (*Check, error) {
	var c Check
	err := p.db.QueryRow(ctx, `INSERT INTO health_check DEFAULT VALUES RETURNING id, created_at`).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to record health check: %v", ErrUnavailable, err)
	}
	return &c, nil
}

// Status is the data field of a health response.
type Status struct {
	Status    string     `json:"status"`
	CheckID   *int64     `json:"checkId,omitempty"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

type Handler struct {
	recorder Recorder
	logger   *slog.Logger
}

// NewHandler creates a health Handler. A nil recorder reports liveness without touching a database.
func NewHandler(recorder Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		recorder: recorder,
		logger:   logger.With("component", "health"),
	}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if h.recorder == nil {
		web.RespondSuccess(w, h.logger, http.StatusOK, "ok", Status{Status: "ok"})
		return
	}

	check, err := h.recorder.Record(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Health check failed", "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, ErrUnavailable.Error())
		return
	}
	web.RespondSuccess(w, h.logger, http.StatusOK, "ok", Status{
		Status:    "ok",
		CheckID:   &check.ID,
		CheckedAt: &check.CreatedAt,
	})
}
