package repository

import "vizagaggregates/models"

type ReferenceRepository interface {
	// GetClients returns all clients ordered by name.
	GetClients() ([]*models.Client, error)
	// AddClient inserts a client; a duplicate name returns ErrDuplicate.
	AddClient(name string) (*models.Client, error)
	// GetVehicles returns all vehicles ordered by vehicle number.
	GetVehicles() ([]*models.Vehicle, error)
	// AddVehicle inserts a vehicle; a duplicate number returns ErrDuplicate.
	AddVehicle(vehicleNo string) (*models.Vehicle, error)
	// SeedReferenceData inserts each name and number that is not already
	// present. Unlike AddClient/AddVehicle, duplicates are skipped
	// silently so the batch can be re-run on every setup.
	SeedReferenceData(clients, vehicles []string) error
}
