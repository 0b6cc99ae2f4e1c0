package repository

import (
	"database/sql"

	"vizagaggregates/models"
)

type PostgresRecordRepo struct {
	DB *sql.DB
}

func NewPostgresRecordRepo(db *sql.DB) *PostgresRecordRepo {
	return &PostgresRecordRepo{DB: db}
}

// recordSelectColumns lists the full row in table order. Dates come
// back as ::text so the YYYY-MM-DD strings survive the round trip
// unchanged.
const recordSelectColumns = `
	id, accounting_date::text, transaction_date::text, shift,
	weighment_slip_no, delivery_challan_no, royalty_permit_no,
	permit_qty, royalty_rate, client_details, payment_mode, vehicle_no,
	material_type, transport_rate, gross_wt, tare_wt, net_wt,
	rate_per_tone, sale_amount, cash_received, advance_received,
	customer_balance, royalty_amount, transport_amount, total_amount,
	remarks, created_at
`

func (r *PostgresRecordRepo) CreateRecord(rec *models.Record) error {
	return r.DB.QueryRow(`
		INSERT INTO records(
			accounting_date, transaction_date, shift,
			weighment_slip_no, delivery_challan_no, royalty_permit_no,
			permit_qty, royalty_rate, client_details, payment_mode, vehicle_no,
			material_type, transport_rate, gross_wt, tare_wt, net_wt,
			rate_per_tone, sale_amount, cash_received, advance_received,
			customer_balance, royalty_amount, transport_amount, total_amount,
			remarks
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
		RETURNING id, created_at
	`,
		rec.AccountingDate, rec.TransactionDate, rec.Shift,
		rec.WeighmentSlipNo, rec.DeliveryChallanNo, rec.RoyaltyPermitNo,
		rec.PermitQty, rec.RoyaltyRate, rec.ClientDetails, rec.PaymentMode, rec.VehicleNo,
		rec.MaterialType, rec.TransportRate, rec.GrossWt, rec.TareWt, rec.NetWt,
		rec.RatePerTone, rec.SaleAmount, rec.CashReceived, rec.AdvanceReceived,
		rec.CustomerBalance, rec.RoyaltyAmount, rec.TransportAmount, rec.TotalAmount,
		rec.Remarks,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *PostgresRecordRepo) GetAllRecords() ([]*models.Record, error) {
	rows, err := r.DB.Query(`
		SELECT ` + recordSelectColumns + `
		FROM records
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Record{}
	for rows.Next() {
		var rec models.Record
		if err := scanRecord(rows, &rec); err != nil {
			return nil, err
		}
		result = append(result, &rec)
	}
	return result, rows.Err()
}

func scanRecord(rows *sql.Rows, rec *models.Record) error {
	return rows.Scan(
		&rec.ID, &rec.AccountingDate, &rec.TransactionDate, &rec.Shift,
		&rec.WeighmentSlipNo, &rec.DeliveryChallanNo, &rec.RoyaltyPermitNo,
		&rec.PermitQty, &rec.RoyaltyRate, &rec.ClientDetails, &rec.PaymentMode, &rec.VehicleNo,
		&rec.MaterialType, &rec.TransportRate, &rec.GrossWt, &rec.TareWt, &rec.NetWt,
		&rec.RatePerTone, &rec.SaleAmount, &rec.CashReceived, &rec.AdvanceReceived,
		&rec.CustomerBalance, &rec.RoyaltyAmount, &rec.TransportAmount, &rec.TotalAmount,
		&rec.Remarks, &rec.CreatedAt,
	)
}

// DeleteRecord is unconditional: deleting an id that is not there
// affects zero rows and still succeeds.
func (r *PostgresRecordRepo) DeleteRecord(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM records WHERE id=$1`, id)
	return err
}
