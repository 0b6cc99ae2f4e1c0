package repository

import "vizagaggregates/models"

// ShiftAll asks for all shifts combined instead of filtering to one.
const ShiftAll = "ALL"

// ReportRepository runs the three aggregate summaries. Dates are
// YYYY-MM-DD strings handed to the store as-is; a malformed date fails
// the query rather than being pre-validated here. Every method returns
// an empty slice, not an error, when nothing matches.
type ReportRepository interface {
	// DispatchSummary groups the day's records by client and material.
	DispatchSummary(date, shift string) ([]models.DispatchRow, error)
	// TripSummary groups the day's records by vehicle.
	TripSummary(date, shift string) ([]models.TripRow, error)
	// TransportSummary groups records in [startDate, endDate] by vehicle;
	// a non-empty vehicleNo restricts to exactly that vehicle.
	TransportSummary(startDate, endDate, vehicleNo string) ([]models.TransportRow, error)
}
