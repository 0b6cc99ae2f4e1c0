package repository

import (
	"context"
	"time"

	"vizagaggregates/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRecordRepo struct {
	DB *mongo.Client
}

func NewMongoRecordRepo(db *mongo.Client) *MongoRecordRepo {
	return &MongoRecordRepo{DB: db}
}

func (r *MongoRecordRepo) database() *mongo.Database {
	return r.DB.Database("vizagaggregates")
}

func (r *MongoRecordRepo) CreateRecord(rec *models.Record) error {
	ctx := context.Background()
	db := r.database()

	id, err := nextSequence(ctx, db, "records")
	if err != nil {
		return err
	}
	rec.ID = id
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err = db.Collection("records").InsertOne(ctx, rec)
	return err
}

func (r *MongoRecordRepo) GetAllRecords() ([]*models.Record, error) {
	ctx := context.Background()

	cur, err := r.database().Collection("records").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []*models.Record{}
	for cur.Next(ctx) {
		var rec models.Record
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		result = append(result, &rec)
	}
	return result, cur.Err()
}

func (r *MongoRecordRepo) DeleteRecord(id int64) error {
	_, err := r.database().Collection("records").
		DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
