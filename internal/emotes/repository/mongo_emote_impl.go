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

func (r *MongoRepository) CreateEmote(ctx context.Context, emote *model.Emote) error {
	now := time.Now()
	if emote.CreatedAt.IsZero() {
		emote.CreatedAt = now
	}
	emote.LastModified = now

	res, err := r.Emotes.InsertOne(ctx, emote)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		emote.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetEmote(ctx context.Context, id primitive.ObjectID) (*model.Emote, error) {
	var emote model.Emote
	err := r.Emotes.FindOne(ctx, bson.M{"_id": id}).Decode(&emote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emote, nil
}

func (r *MongoRepository) UpdateEmote(ctx context.Context, emote *model.Emote) error {
	emote.LastModified = time.Now()
	update := bson.M{"$set": bson.M{
		"name":          emote.Name,
		"visibility":    emote.Visibility,
		"status":        emote.Status,
		"tags":          emote.Tags,
		"last_modified": emote.LastModified,
	}}
	res, err := r.Emotes.UpdateOne(ctx, bson.M{"_id": emote.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindEmotes(ctx context.Context, req model.ListEmotesReq) ([]*model.Emote, int64, error) {
	// Deleted emotes never surface in listings.
	filter := bson.M{"status": bson.M{"$ne": model.EmoteStatusDeleted}}
	if req.Name != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: req.Name, Options: "i"}}
	}
	if req.OwnerID != "" {
		ownerID, err := primitive.ObjectIDFromHex(req.OwnerID)
		if err != nil {
			return nil, 0, err
		}
		filter["owner_id"] = ownerID
	}

	total, err := r.Emotes.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.Emotes.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.Emote
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
