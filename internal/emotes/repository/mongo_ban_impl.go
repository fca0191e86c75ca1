package repository

import (
	"context"
	"time"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateBan(ctx context.Context, ban *model.Ban) error {
	if ban.CreatedAt.IsZero() {
		ban.CreatedAt = time.Now()
	}
	ban.Active = true

	res, err := r.Bans.InsertOne(ctx, ban)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ban.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetActiveBan(ctx context.Context, userID primitive.ObjectID) (*model.Ban, error) {
	var ban model.Ban
	err := r.Bans.FindOne(ctx, bson.M{"user_id": userID, "active": true}).Decode(&ban)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Lazy expiry: a ban past its deadline is treated as inactive.
	if ban.Expired(time.Now()) {
		if _, derr := r.DeactivateBans(ctx, userID); derr != nil {
			return nil, derr
		}
		return nil, nil
	}
	return &ban, nil
}

func (r *MongoRepository) DeactivateBans(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := r.Bans.UpdateMany(ctx,
		bson.M{"user_id": userID, "active": true},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
