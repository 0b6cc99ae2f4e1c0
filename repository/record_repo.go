package repository

import "vizagaggregates/models"

type RecordRepository interface {
	// CreateRecord inserts a record and fills in the generated id and
	// created_at on the passed struct.
	CreateRecord(rec *models.Record) error
	// GetAllRecords returns every record, most recent first.
	GetAllRecords() ([]*models.Record, error)
	// DeleteRecord removes a record by id; a missing id is not an error.
	DeleteRecord(id int64) error
}
