// Package http provides HTTP handlers for the local employee API stand-in.
// It mirrors the shape of the remote employee data source the dashboard
// fetches from: raw records without performance data.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/staffdeck/internal/dataset"
	"github.com/atinyakov/staffdeck/internal/models"
)

// EmployeeHandler serves the employee collection endpoints.
type EmployeeHandler struct {
	mu    sync.Mutex
	Store *dataset.Store
}

// NewEmployeeHandler returns a handler over the given record store.
func NewEmployeeHandler(store *dataset.Store) *EmployeeHandler {
	return &EmployeeHandler{Store: store}
}

// List handles GET /employees?limit=N.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	h.mu.Lock()
	list := h.Store.List(limit)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"employees": list})
}

// Get handles GET /employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	e, ok := h.Store.Get(id)
	h.mu.Unlock()

	if !ok {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	created := h.Store.Add(req)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}
