package models

import "time"

type Vehicle struct {
	ID        int64     `json:"id" db:"id" bson:"_id,omitempty"`
	VehicleNo string    `json:"vehicle_no" db:"vehicle_no" bson:"vehicle_no"`
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}
