package api_test

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// /events
// ---------------------------------------------------------------------------

func TestListEvents_Empty(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().ListEvents(mock.Anything).Return(nil, nil)

	rec := serve(t, router, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]any](t, rec))
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	startsAt := time.Date(2026, 11, 26, 17, 0, 0, 0, time.UTC)
	ev := db.Event{ID: uuid.New(), Title: "Thanksgiving dinner", StartsAt: startsAt}
	mockQ.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(p db.CreateEventParams) bool {
		return p.Title == "Thanksgiving dinner" &&
			p.StartsAt.Equal(startsAt) &&
			p.AssignedTo == sql.NullString{String: "sam", Valid: true}
	})).Return(ev, nil)

	rec := serve(t, router, http.MethodPost, "/events", map[string]any{
		"title":       " Thanksgiving dinner ",
		"starts_at":   startsAt.Format(time.RFC3339),
		"assigned_to": "sam",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ev.ID.String(), decode[map[string]any](t, rec)["ID"])
}

func TestCreateEvent_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    map[string]any
		wantErr string
	}{
		{name: "missing title", body: map[string]any{"starts_at": "2026-01-01T10:00:00Z"}, wantErr: "title is required"},
		{name: "missing start", body: map[string]any{"title": "Dentist"}, wantErr: "starts_at is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, router := setupRouter(t)

			rec := serve(t, router, http.MethodPost, "/events", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[map[string]string](t, rec)["error"], tc.wantErr)
		})
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().GetEvent(mock.Anything, id).Return(db.Event{}, sql.ErrNoRows)

	rec := serve(t, router, http.MethodGet, "/events/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEvent(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().UpdateEvent(mock.Anything, mock.MatchedBy(func(p db.UpdateEventParams) bool {
		return p.ID == id && p.Title == "Dentist" && !p.AssignedTo.Valid
	})).Return(db.Event{ID: id, Title: "Dentist"}, nil)

	rec := serve(t, router, http.MethodPut, "/events/"+id.String(), map[string]any{
		"title":     "Dentist",
		"starts_at": "2026-03-02T09:30:00Z",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().DeleteEvent(mock.Anything, id).Return(int64(0), nil)

	rec := serve(t, router, http.MethodDelete, "/events/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// /chores
// ---------------------------------------------------------------------------

func TestCreateChore(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		body    map[string]any
		wantDue bool
	}{
		{name: "with due date", body: map[string]any{"title": "Take out recycling", "due_date": due.Format(time.RFC3339)}, wantDue: true},
		{name: "without due date", body: map[string]any{"title": "Take out recycling"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mockQ, router := setupRouter(t)

			mockQ.EXPECT().CreateChore(mock.Anything, mock.MatchedBy(func(p db.CreateChoreParams) bool {
				return p.Title == "Take out recycling" && p.DueDate.Valid == tc.wantDue
			})).Return(db.Chore{ID: uuid.New(), Title: "Take out recycling"}, nil)

			rec := serve(t, router, http.MethodPost, "/chores", tc.body)

			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func TestCreateChore_MissingTitle(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	rec := serve(t, router, http.MethodPost, "/chores", map[string]any{"title": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteChore(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	done := db.Chore{ID: id, Title: "Vacuum", CompletedAt: sql.NullTime{Time: time.Now(), Valid: true}}
	mockQ.EXPECT().CompleteChore(mock.Anything, id).Return(done, nil)

	rec := serve(t, router, http.MethodPost, "/chores/"+id.String()+"/complete", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, true, got["CompletedAt"].(map[string]any)["Valid"])
}

func TestCompleteChore_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().CompleteChore(mock.Anything, id).Return(db.Chore{}, sql.ErrNoRows)

	rec := serve(t, router, http.MethodPost, "/chores/"+id.String()+"/complete", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteChore(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().DeleteChore(mock.Anything, id).Return(int64(1), nil)

	rec := serve(t, router, http.MethodDelete, "/chores/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
