package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/repository"
	"github.com/finwell/finhealth-service/internal/service"
)

// Handler exposes the service over HTTP. The username path segment is
// trusted as-is: authentication and tenant isolation live outside this
// service.
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register wires the record and dashboard routes onto the router
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.Healthz).Methods("GET")
	r.HandleFunc("/users/{username}/data", h.GetDashboard).Methods("GET")
	r.HandleFunc("/users/{username}/onboard", h.Onboard).Methods("POST")
	r.HandleFunc("/users/{username}/expenses", h.AddExpense).Methods("POST")
	r.HandleFunc("/users/{username}/expenses/{id:[0-9]+}", h.DeleteExpense).Methods("DELETE")
	r.HandleFunc("/users/{username}/assets", h.AddAsset).Methods("POST")
	r.HandleFunc("/users/{username}/assets/{id:[0-9]+}", h.DeleteAsset).Methods("DELETE")
	r.HandleFunc("/users/{username}/liabilities", h.AddLiability).Methods("POST")
	r.HandleFunc("/users/{username}/liabilities/{id:[0-9]+}", h.DeleteLiability).Methods("DELETE")
	r.HandleFunc("/users/{username}/goals", h.AddGoal).Methods("POST")
	r.HandleFunc("/users/{username}/goals/{id:[0-9]+}", h.DeleteGoal).Methods("DELETE")
}

// Healthz reports process liveness
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetDashboard returns the full dashboard snapshot for a user
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	snapshot, err := h.svc.BuildSnapshot(username)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

// Onboard creates or updates a user's financial profile
func (h *Handler) Onboard(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	profile.Username = mux.Vars(r)["username"]
	if err := h.svc.SaveProfile(&profile); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

// AddExpense records a new expense for a user
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	expense.Username = mux.Vars(r)["username"]
	if err := h.svc.AddExpense(&expense); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, expense)
}

// DeleteExpense removes a user's expense
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, h.svc.DeleteExpense)
}

// AddAsset records a new asset holding for a user
func (h *Handler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	asset.Username = mux.Vars(r)["username"]
	if err := h.svc.AddAsset(&asset); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, asset)
}

// DeleteAsset removes a user's asset
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, h.svc.DeleteAsset)
}

// AddLiability records a new liability for a user
func (h *Handler) AddLiability(w http.ResponseWriter, r *http.Request) {
	var liability models.Liability
	if err := json.NewDecoder(r.Body).Decode(&liability); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	liability.Username = mux.Vars(r)["username"]
	if err := h.svc.AddLiability(&liability); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, liability)
}

// DeleteLiability removes a user's liability
func (h *Handler) DeleteLiability(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, h.svc.DeleteLiability)
}

// AddGoal records a new savings goal for a user
func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var goal models.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	goal.Username = mux.Vars(r)["username"]
	if err := h.svc.AddGoal(&goal); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, goal)
}

// DeleteGoal removes a user's goal
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, h.svc.DeleteGoal)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request, del func(string, int64) error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := del(vars["username"], id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"msg": "ok"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	h.log.Errorf("Request failed: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
