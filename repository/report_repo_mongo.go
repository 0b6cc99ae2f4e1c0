package repository

import (
	"context"

	"vizagaggregates/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoReportRepo struct {
	DB *mongo.Client
}

func NewMongoReportRepo(db *mongo.Client) *MongoReportRepo {
	return &MongoReportRepo{DB: db}
}

func (r *MongoReportRepo) database() *mongo.Database {
	return r.DB.Database("vizagaggregates")
}

// The pipelines mirror the relational summaries, including the SQL
// aggregate convention that a group holding only missing net_wt values
// sums to null rather than zero. $sum alone would report 0 there, so
// each pipeline counts the non-null values and projects null when that
// count is zero. Dates are YYYY-MM-DD strings, so range filters are
// plain lexicographic comparisons.

func nullableSum(field string) bson.M {
	return bson.M{
		"$cond": bson.A{
			bson.M{"$gt": bson.A{"$" + field + "_count", 0}},
			"$" + field,
			nil,
		},
	}
}

func sumStages(field string) (bson.M, bson.M) {
	sum := bson.M{"$sum": "$" + field}
	count := bson.M{"$sum": bson.M{
		"$cond": bson.A{
			bson.M{"$in": bson.A{bson.M{"$type": "$" + field}, bson.A{"double", "int", "long", "decimal"}}},
			1,
			0,
		},
	}}
	return sum, count
}

func (r *MongoReportRepo) DispatchSummary(date, shift string) ([]models.DispatchRow, error) {
	match := bson.M{"transaction_date": date}
	if shift != "" && shift != ShiftAll {
		match["shift"] = shift
	}

	netSum, netCount := sumStages("net_wt")
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":          bson.M{"client_details": "$client_details", "material_type": "$material_type"},
			"net_wt":       netSum,
			"net_wt_count": netCount,
			"trips":        bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"client_details": "$_id.client_details",
			"material_type":  "$_id.material_type",
			"total_net_wt":   nullableSum("net_wt"),
			"trips":          1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "client_details", Value: 1}}}},
	}

	ctx := context.Background()
	cur, err := r.database().Collection("records").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []models.DispatchRow{}
	for cur.Next(ctx) {
		var row models.DispatchRow
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, cur.Err()
}

func (r *MongoReportRepo) TripSummary(date, shift string) ([]models.TripRow, error) {
	match := bson.M{"transaction_date": date}
	if shift != "" && shift != ShiftAll {
		match["shift"] = shift
	}

	netSum, netCount := sumStages("net_wt")
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$vehicle_no",
			"net_wt":       netSum,
			"net_wt_count": netCount,
			"total_trips":  bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"vehicle_no":   "$_id",
			"total_trips":  1,
			"total_net_wt": nullableSum("net_wt"),
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "vehicle_no", Value: 1}}}},
	}

	ctx := context.Background()
	cur, err := r.database().Collection("records").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []models.TripRow{}
	for cur.Next(ctx) {
		var row models.TripRow
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, cur.Err()
}

func (r *MongoReportRepo) TransportSummary(startDate, endDate, vehicleNo string) ([]models.TransportRow, error) {
	match := bson.M{"transaction_date": bson.M{"$gte": startDate, "$lte": endDate}}
	if vehicleNo != "" {
		match["vehicle_no"] = vehicleNo
	}

	netSum, netCount := sumStages("net_wt")
	amtSum, amtCount := sumStages("transport_amount")
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":                    "$vehicle_no",
			"net_wt":                 netSum,
			"net_wt_count":           netCount,
			"transport_amount":       amtSum,
			"transport_amount_count": amtCount,
			"total_trips":            bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":                    0,
			"vehicle_no":             "$_id",
			"total_trips":            1,
			"total_net_wt":           nullableSum("net_wt"),
			"total_transport_amount": nullableSum("transport_amount"),
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "vehicle_no", Value: 1}}}},
	}

	ctx := context.Background()
	cur, err := r.database().Collection("records").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []models.TransportRow{}
	for cur.Next(ctx) {
		var row models.TransportRow
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, cur.Err()
}
