package repository

import (
	"database/sql"

	"vizagaggregates/models"
)

type PostgresReferenceRepo struct {
	DB *sql.DB
}

func NewPostgresReferenceRepo(db *sql.DB) *PostgresReferenceRepo {
	return &PostgresReferenceRepo{DB: db}
}

func (r *PostgresReferenceRepo) GetClients() ([]*models.Client, error) {
	rows, err := r.DB.Query(`SELECT id, name, created_at FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

func (r *PostgresReferenceRepo) AddClient(name string) (*models.Client, error) {
	c := &models.Client{Name: name}
	err := r.DB.QueryRow(`
		INSERT INTO clients(name) VALUES($1)
		RETURNING id, created_at
	`, name).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresReferenceRepo) GetVehicles() ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(`SELECT id, vehicle_no, created_at FROM vehicles ORDER BY vehicle_no ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleNo, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, rows.Err()
}

func (r *PostgresReferenceRepo) AddVehicle(vehicleNo string) (*models.Vehicle, error) {
	v := &models.Vehicle{VehicleNo: vehicleNo}
	err := r.DB.QueryRow(`
		INSERT INTO vehicles(vehicle_no) VALUES($1)
		RETURNING id, created_at
	`, vehicleNo).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return v, nil
}

// SeedReferenceData runs the whole batch inside one transaction so a
// failure partway through rolls back instead of leaving a partial
// seed. Rows that already exist are skipped via ON CONFLICT DO
// NOTHING, which also covers duplicates inside the batch itself.
func (r *PostgresReferenceRepo) SeedReferenceData(clients, vehicles []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, name := range clients {
		if _, err := tx.Exec(`
			INSERT INTO clients(name) VALUES($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			return err
		}
	}

	for _, vehicleNo := range vehicles {
		if _, err := tx.Exec(`
			INSERT INTO vehicles(vehicle_no) VALUES($1)
			ON CONFLICT (vehicle_no) DO NOTHING
		`, vehicleNo); err != nil {
			return err
		}
	}

	return tx.Commit()
}
