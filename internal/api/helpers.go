package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func jsonOK(w http.ResponseWriter, v any) {
	jsonStatus(w, http.StatusOK, v)
}

func jsonCreated(w http.ResponseWriter, v any) {
	jsonStatus(w, http.StatusCreated, v)
}

func jsonStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	jsonStatus(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a JSON request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// urlID parses the UUID path parameter key, writing a 400 on failure.
func urlID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		jsonError(w, "invalid "+key, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps a lookup failure to 404 for missing rows and 500 otherwise.
func storeError(w http.ResponseWriter, err error, entity, action string) {
	if errors.Is(err, sql.ErrNoRows) {
		jsonError(w, entity+" not found", http.StatusNotFound)
		return
	}
	jsonError(w, "failed to "+action+" "+entity, http.StatusInternalServerError, err)
}

// deleted answers a delete by its affected row count.
func deleted(w http.ResponseWriter, n int64, err error, entity string) {
	if err != nil {
		jsonError(w, "failed to delete "+entity, http.StatusInternalServerError, err)
		return
	}
	if n == 0 {
		jsonError(w, entity+" not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
