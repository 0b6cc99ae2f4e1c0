package models

import "time"

// Record is one weighbridge dispatch trip. Dates travel as YYYY-MM-DD
// strings end to end; the database coerces them to DATE on insert, so a
// malformed literal fails at the store, not before. Monetary fields are
// supplied by the caller and stored verbatim (net_wt is NOT recomputed
// from gross_wt - tare_wt here).
type Record struct {
	ID              int64  `json:"id" db:"id" bson:"_id,omitempty"`
	AccountingDate  string `json:"accounting_date" db:"accounting_date" bson:"accounting_date"`
	TransactionDate string `json:"transaction_date" db:"transaction_date" bson:"transaction_date"`
	Shift           string `json:"shift" db:"shift" bson:"shift"`

	WeighmentSlipNo   *string `json:"weighment_slip_no,omitempty" db:"weighment_slip_no" bson:"weighment_slip_no,omitempty"`
	DeliveryChallanNo *string `json:"delivery_challan_no,omitempty" db:"delivery_challan_no" bson:"delivery_challan_no,omitempty"`
	RoyaltyPermitNo   *string `json:"royalty_permit_no,omitempty" db:"royalty_permit_no" bson:"royalty_permit_no,omitempty"`

	PermitQty     *float64 `json:"permit_qty,omitempty" db:"permit_qty" bson:"permit_qty,omitempty"`
	RoyaltyRate   *float64 `json:"royalty_rate,omitempty" db:"royalty_rate" bson:"royalty_rate,omitempty"`
	TransportRate *float64 `json:"transport_rate,omitempty" db:"transport_rate" bson:"transport_rate,omitempty"`
	GrossWt       *float64 `json:"gross_wt,omitempty" db:"gross_wt" bson:"gross_wt,omitempty"`
	TareWt        *float64 `json:"tare_wt,omitempty" db:"tare_wt" bson:"tare_wt,omitempty"`
	NetWt         *float64 `json:"net_wt,omitempty" db:"net_wt" bson:"net_wt,omitempty"`
	RatePerTone   *float64 `json:"rate_per_tone,omitempty" db:"rate_per_tone" bson:"rate_per_tone,omitempty"`

	SaleAmount      *float64 `json:"sale_amount,omitempty" db:"sale_amount" bson:"sale_amount,omitempty"`
	CashReceived    *float64 `json:"cash_received,omitempty" db:"cash_received" bson:"cash_received,omitempty"`
	AdvanceReceived *float64 `json:"advance_received,omitempty" db:"advance_received" bson:"advance_received,omitempty"`
	CustomerBalance *float64 `json:"customer_balance,omitempty" db:"customer_balance" bson:"customer_balance,omitempty"`
	RoyaltyAmount   *float64 `json:"royalty_amount,omitempty" db:"royalty_amount" bson:"royalty_amount,omitempty"`
	TransportAmount *float64 `json:"transport_amount,omitempty" db:"transport_amount" bson:"transport_amount,omitempty"`
	TotalAmount     *float64 `json:"total_amount,omitempty" db:"total_amount" bson:"total_amount,omitempty"`

	ClientDetails string  `json:"client_details" db:"client_details" bson:"client_details"`
	PaymentMode   *string `json:"payment_mode,omitempty" db:"payment_mode" bson:"payment_mode,omitempty"`
	MaterialType  string  `json:"material_type" db:"material_type" bson:"material_type"`
	VehicleNo     string  `json:"vehicle_no" db:"vehicle_no" bson:"vehicle_no"`
	Remarks       *string `json:"remarks,omitempty" db:"remarks" bson:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}
