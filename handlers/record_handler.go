package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vizagaggregates/models"
	"vizagaggregates/repository"
)

type RecordHandler struct {
	Repo repository.RecordRepository
}

// CreateRecord handler
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateRecord(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// GetAllRecords handler
func (h *RecordHandler) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetAllRecords()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// DeleteRecord handler; deleting an id that is not there still
// answers success, matching the store's at-most-one-row semantics.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing record id", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteRecord(id); err != nil {
		http.Error(w, "failed to delete record: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Record deleted successfully",
	})
}
