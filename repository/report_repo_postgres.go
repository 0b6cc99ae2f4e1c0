package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"vizagaggregates/models"
)

type PostgresReportRepo struct {
	DB *sql.DB
}

func NewPostgresReportRepo(db *sql.DB) *PostgresReportRepo {
	return &PostgresReportRepo{DB: db}
}

// All three summaries follow the same shape: a mandatory date
// predicate, optional predicates appended as (condition, arg) pairs,
// then GROUP BY the non-aggregated columns and a fixed ORDER BY.
// Values are always bound through placeholders, never interpolated.

func (r *PostgresReportRepo) DispatchSummary(date, shift string) ([]models.DispatchRow, error) {
	where := []string{"transaction_date = $1"}
	args := []interface{}{date}
	if shift != "" && shift != ShiftAll {
		where = append(where, fmt.Sprintf("shift = $%d", len(args)+1))
		args = append(args, shift)
	}

	query := `
		SELECT client_details, material_type,
		       SUM(net_wt) AS total_net_wt,
		       COUNT(*) AS trips
		FROM records
		WHERE ` + strings.Join(where, " AND ") + `
		GROUP BY client_details, material_type
		ORDER BY client_details ASC
	`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.DispatchRow{}
	for rows.Next() {
		var row models.DispatchRow
		if err := rows.Scan(&row.ClientDetails, &row.MaterialType, &row.TotalNetWt, &row.Trips); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PostgresReportRepo) TripSummary(date, shift string) ([]models.TripRow, error) {
	where := []string{"transaction_date = $1"}
	args := []interface{}{date}
	if shift != "" && shift != ShiftAll {
		where = append(where, fmt.Sprintf("shift = $%d", len(args)+1))
		args = append(args, shift)
	}

	query := `
		SELECT vehicle_no,
		       COUNT(*) AS total_trips,
		       SUM(net_wt) AS total_net_wt
		FROM records
		WHERE ` + strings.Join(where, " AND ") + `
		GROUP BY vehicle_no
		ORDER BY vehicle_no ASC
	`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.TripRow{}
	for rows.Next() {
		var row models.TripRow
		if err := rows.Scan(&row.VehicleNo, &row.TotalTrips, &row.TotalNetWt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PostgresReportRepo) TransportSummary(startDate, endDate, vehicleNo string) ([]models.TransportRow, error) {
	where := []string{"transaction_date BETWEEN $1 AND $2"}
	args := []interface{}{startDate, endDate}
	if vehicleNo != "" {
		where = append(where, fmt.Sprintf("vehicle_no = $%d", len(args)+1))
		args = append(args, vehicleNo)
	}

	query := `
		SELECT vehicle_no,
		       COUNT(*) AS total_trips,
		       SUM(net_wt) AS total_net_wt,
		       SUM(transport_amount) AS total_transport_amount
		FROM records
		WHERE ` + strings.Join(where, " AND ") + `
		GROUP BY vehicle_no
		ORDER BY vehicle_no ASC
	`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.TransportRow{}
	for rows.Next() {
		var row models.TransportRow
		if err := rows.Scan(&row.VehicleNo, &row.TotalTrips, &row.TotalNetWt, &row.TotalTransportAmount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
