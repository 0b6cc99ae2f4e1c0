package models

// Report rows keep summed weights as *float64: SUM over a group whose
// every net_wt is NULL yields NULL, and that must survive to the JSON
// response rather than flatten to zero.

// DispatchRow is one (client, material) group of the daily dispatch
// summary.
type DispatchRow struct {
	ClientDetails string   `json:"client_details" db:"client_details" bson:"client_details"`
	MaterialType  string   `json:"material_type" db:"material_type" bson:"material_type"`
	TotalNetWt    *float64 `json:"total_net_wt" db:"total_net_wt" bson:"total_net_wt"`
	Trips         int64    `json:"trips" db:"trips" bson:"trips"`
}

// TripRow is one vehicle's line of the full-trip-detail summary.
type TripRow struct {
	VehicleNo  string   `json:"vehicle_no" db:"vehicle_no" bson:"vehicle_no"`
	TotalTrips int64    `json:"total_trips" db:"total_trips" bson:"total_trips"`
	TotalNetWt *float64 `json:"total_net_wt" db:"total_net_wt" bson:"total_net_wt"`
}

// TransportRow is one vehicle's line of the transport billing summary
// over a date range.
type TransportRow struct {
	VehicleNo            string   `json:"vehicle_no" db:"vehicle_no" bson:"vehicle_no"`
	TotalTrips           int64    `json:"total_trips" db:"total_trips" bson:"total_trips"`
	TotalNetWt           *float64 `json:"total_net_wt" db:"total_net_wt" bson:"total_net_wt"`
	TotalTransportAmount *float64 `json:"total_transport_amount" db:"total_transport_amount" bson:"total_transport_amount"`
}
