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

// EnsureAuditIndexes creates indexes for efficient log querying.
func (r *MongoRepository) EnsureAuditIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "type", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_type_query"),
		},
		{
			Keys: bson.D{
				{Key: "action_user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_actor_query"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_audit_created_at"),
		},
	}

	_, err := r.Audit.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateAuditEntry appends a new entry. There is deliberately no update or
// delete counterpart.
func (r *MongoRepository) CreateAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.Audit.InsertOne(ctx, entry)
	return err
}

func (r *MongoRepository) FindAuditEntries(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditEntry, int64, error) {
	filter := bson.M{}
	if req.Type != 0 {
		filter["type"] = req.Type
	}
	if req.UserID != "" {
		actorID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return nil, 0, err
		}
		filter["action_user_id"] = actorID
	}
	if req.StartTime != nil || req.EndTime != nil {
		timeFilter := bson.M{}
		if req.StartTime != nil {
			timeFilter["$gte"] = *req.StartTime
		}
		if req.EndTime != nil {
			timeFilter["$lte"] = *req.EndTime
		}
		filter["created_at"] = timeFilter
	}

	total, err := r.Audit.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.Audit.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.AuditEntry
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
