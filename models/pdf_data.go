package models

// TransportBillRow is a display-ready line for the bill template;
// missing sums render as "-" rather than zero.
type TransportBillRow struct {
	VehicleNo  string
	TotalTrips int64
	NetWt      string
	Amount     string
}

type TransportBillPDFData struct {
	StartDate   string // formatted range start
	EndDate     string // formatted range end
	VehicleNo   string // empty when the bill covers all vehicles
	Rows        []TransportBillRow
	TotalTrips  int64
	TotalNetWt  float64
	TotalAmount float64
	TotalWords  string
	GeneratedAt string
}
