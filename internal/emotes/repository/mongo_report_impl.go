package repository

import (
	"context"
	"time"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateReport(ctx context.Context, report *model.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	res, err := r.Reports.InsertOne(ctx, report)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetReport(ctx context.Context, id primitive.ObjectID) (*model.Report, error) {
	var report model.Report
	err := r.Reports.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *MongoRepository) ClearReport(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Reports.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"cleared": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindReports(ctx context.Context, req model.ListReportsReq) ([]*model.Report, int64, error) {
	filter := bson.M{}
	if req.Cleared != nil {
		filter["cleared"] = *req.Cleared
	}

	total, err := r.Reports.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.Reports.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.Report
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
