package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "vizagaggregates"

type MongoDB struct {
	Client *mongo.Client
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewMongoDB(url string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
	}
}

func (m *MongoDB) Connect() error {
	client, err := mongo.Connect(m.Ctx, options.Client().ApplyURI(m.URL))
	if err != nil {
		return err
	}
	m.Client = client
	if err := m.Client.Ping(m.Ctx, nil); err != nil {
		return err
	}
	return m.ensureIndexes()
}

// ensureIndexes is the document-store counterpart of the relational
// schema setup: unique indexes back the same duplicate-name contract
// the clients/vehicles tables enforce with UNIQUE columns. Creating an
// index that already exists is a no-op, so this runs on every start.
func (m *MongoDB) ensureIndexes() error {
	db := m.Client.Database(DatabaseName)

	_, err := db.Collection("clients").Indexes().CreateOne(m.Ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("vehicles").Indexes().CreateOne(m.Ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "vehicle_no", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoDB) Disconnect() error {
	m.Cancel()
	return m.Client.Disconnect(m.Ctx)
}

func (m *MongoDB) GetContext() context.Context {
	return m.Ctx
}
