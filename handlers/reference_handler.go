package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vizagaggregates/models"
	"vizagaggregates/repository"
)

type ReferenceHandler struct {
	Repo repository.ReferenceRepository
}

func (h *ReferenceHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetClients()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Client{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AddClient surfaces a duplicate name as 409 so the frontend can tell
// "already exists" apart from a storage failure.
func (h *ReferenceHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		http.Error(w, "client name is required", http.StatusBadRequest)
		return
	}

	client, err := h.Repo.AddClient(body.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeJSON(w, http.StatusConflict, ApiResponse{
				Success: false,
				Message: "Client already exists",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(client)
}

func (h *ReferenceHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetVehicles()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Vehicle{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *ReferenceHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VehicleNo string `json:"vehicle_no"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.VehicleNo) == "" {
		http.Error(w, "vehicle number is required", http.StatusBadRequest)
		return
	}

	vehicle, err := h.Repo.AddVehicle(body.VehicleNo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeJSON(w, http.StatusConflict, ApiResponse{
				Success: false,
				Message: "Vehicle already exists",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(vehicle)
}
