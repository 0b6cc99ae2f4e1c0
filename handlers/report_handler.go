package handlers

import (
	"encoding/json"
	"net/http"

	"vizagaggregates/repository"
)

type ReportHandler struct {
	Repo repository.ReportRepository
}

// DispatchReport serves GET /reports/dispatch?date=&shift=.
// shift=ALL (or omitted) combines all shifts.
func (h *ReportHandler) DispatchReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "missing date", http.StatusBadRequest)
		return
	}
	shift := r.URL.Query().Get("shift")

	rows, err := h.Repo.DispatchSummary(date, shift)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

// TripReport serves GET /reports/trips?date=&shift=.
func (h *ReportHandler) TripReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "missing date", http.StatusBadRequest)
		return
	}
	shift := r.URL.Query().Get("shift")

	rows, err := h.Repo.TripSummary(date, shift)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

// TransportReport serves GET /reports/transport?start_date=&end_date=&vehicle_no=.
// vehicle_no is optional; when absent the summary spans all vehicles.
func (h *ReportHandler) TransportReport(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		http.Error(w, "missing start_date or end_date", http.StatusBadRequest)
		return
	}
	vehicleNo := r.URL.Query().Get("vehicle_no")

	rows, err := h.Repo.TransportSummary(startDate, endDate, vehicleNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
