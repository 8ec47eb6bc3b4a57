package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

// --- events ---

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	AssignedTo  string    `json:"assigned_to"`
}

func (req *eventRequest) validate() string {
	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "":
		return "title is required"
	case req.StartsAt.IsZero():
		return "starts_at is required"
	}
	return ""
}

func handleListEvents(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListEvents(r.Context())
		if err != nil {
			jsonError(w, "failed to list events", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.Event{}
		}
		jsonOK(w, items)
	}
}

func handleCreateEvent(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if msg := req.validate(); msg != "" {
			jsonError(w, msg, http.StatusBadRequest)
			return
		}
		ev, err := svc.Queries().CreateEvent(r.Context(), db.CreateEventParams{
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			AssignedTo:  nullString(req.AssignedTo),
		})
		if err != nil {
			jsonError(w, "failed to create event", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, ev)
	}
}

func handleGetEvent(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		ev, err := svc.Queries().GetEvent(r.Context(), id)
		if err != nil {
			storeError(w, err, "event", "get")
			return
		}
		jsonOK(w, ev)
	}
}

func handleUpdateEvent(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var req eventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if msg := req.validate(); msg != "" {
			jsonError(w, msg, http.StatusBadRequest)
			return
		}
		ev, err := svc.Queries().UpdateEvent(r.Context(), db.UpdateEventParams{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			AssignedTo:  nullString(req.AssignedTo),
		})
		if err != nil {
			storeError(w, err, "event", "update")
			return
		}
		jsonOK(w, ev)
	}
}

func handleDeleteEvent(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteEvent(r.Context(), id)
		deleted(w, n, err, "event")
	}
}

// --- chores ---

type choreRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

func handleListChores(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListChores(r.Context())
		if err != nil {
			jsonError(w, "failed to list chores", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.Chore{}
		}
		jsonOK(w, items)
	}
}

func handleCreateChore(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req choreRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		title := strings.TrimSpace(req.Title)
		if title == "" {
			jsonError(w, "title is required", http.StatusBadRequest)
			return
		}
		chore, err := svc.Queries().CreateChore(r.Context(), db.CreateChoreParams{
			Title:       title,
			Description: req.Description,
			AssignedTo:  nullString(req.AssignedTo),
			DueDate:     nullTime(req.DueDate),
		})
		if err != nil {
			jsonError(w, "failed to create chore", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, chore)
	}
}

// handleCompleteChore marks a chore done. Completing it again keeps the
// first completion time.
func handleCompleteChore(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		chore, err := svc.Queries().CompleteChore(r.Context(), id)
		if err != nil {
			storeError(w, err, "chore", "complete")
			return
		}
		jsonOK(w, chore)
	}
}

func handleDeleteChore(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteChore(r.Context(), id)
		deleted(w, n, err, "chore")
	}
}
