package models

import "time"

// Client is a reference entry used to populate the client_details field
// of a record. Records keep the name as free text, there is no foreign
// key back to this table.
type Client struct {
	ID        int64     `json:"id" db:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" db:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}
