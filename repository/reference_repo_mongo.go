package repository

import (
	"context"
	"time"

	"vizagaggregates/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoReferenceRepo struct {
	DB *mongo.Client
}

func NewMongoReferenceRepo(db *mongo.Client) *MongoReferenceRepo {
	return &MongoReferenceRepo{DB: db}
}

func (r *MongoReferenceRepo) database() *mongo.Database {
	return r.DB.Database("vizagaggregates")
}

func (r *MongoReferenceRepo) GetClients() ([]*models.Client, error) {
	ctx := context.Background()

	cur, err := r.database().Collection("clients").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []*models.Client{}
	for cur.Next(ctx) {
		var c models.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) AddClient(name string) (*models.Client, error) {
	ctx := context.Background()
	db := r.database()

	id, err := nextSequence(ctx, db, "clients")
	if err != nil {
		return nil, err
	}
	c := &models.Client{ID: id, Name: name, CreatedAt: time.Now().UTC()}

	if _, err := db.Collection("clients").InsertOne(ctx, c); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return c, nil
}

func (r *MongoReferenceRepo) GetVehicles() ([]*models.Vehicle, error) {
	ctx := context.Background()

	cur, err := r.database().Collection("vehicles").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "vehicle_no", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []*models.Vehicle{}
	for cur.Next(ctx) {
		var v models.Vehicle
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, cur.Err()
}

func (r *MongoReferenceRepo) AddVehicle(vehicleNo string) (*models.Vehicle, error) {
	ctx := context.Background()
	db := r.database()

	id, err := nextSequence(ctx, db, "vehicles")
	if err != nil {
		return nil, err
	}
	v := &models.Vehicle{ID: id, VehicleNo: vehicleNo, CreatedAt: time.Now().UTC()}

	if _, err := db.Collection("vehicles").InsertOne(ctx, v); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return v, nil
}

// SeedReferenceData inserts each missing entry, skipping names and
// numbers the unique indexes already hold. Duplicate-key failures are
// absorbed here on purpose; only the interactive Add path reports them.
func (r *MongoReferenceRepo) SeedReferenceData(clients, vehicles []string) error {
	for _, name := range clients {
		if _, err := r.AddClient(name); err != nil && err != ErrDuplicate {
			return err
		}
	}
	for _, vehicleNo := range vehicles {
		if _, err := r.AddVehicle(vehicleNo); err != nil && err != ErrDuplicate {
			return err
		}
	}
	return nil
}
