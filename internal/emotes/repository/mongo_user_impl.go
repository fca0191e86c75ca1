package repository

import (
	"context"
	"time"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateUser(ctx context.Context, user *model.TwitchUser) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	res, err := r.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetUser(ctx context.Context, id primitive.ObjectID) (*model.TwitchUser, error) {
	var user model.TwitchUser
	err := r.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) GetUserByTwitchID(ctx context.Context, twitchID string) (*model.TwitchUser, error) {
	var user model.TwitchUser
	err := r.Users.FindOne(ctx, bson.M{"twitch_id": twitchID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) SetUserRole(ctx context.Context, userID primitive.ObjectID, roleID *primitive.ObjectID) error {
	var update bson.M
	if roleID == nil {
		update = bson.M{"$unset": bson.M{"role_id": ""}}
	} else {
		update = bson.M{"$set": bson.M{"role_id": *roleID}}
	}
	res, err := r.Users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) AddEditor(ctx context.Context, userID, editorID primitive.ObjectID) error {
	res, err := r.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"editor_ids": editorID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) RemoveEditor(ctx context.Context, userID, editorID primitive.ObjectID) error {
	res, err := r.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"editor_ids": editorID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) AddUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error {
	_, err := r.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"emote_ids": emoteID}},
	)
	return err
}

func (r *MongoRepository) RemoveUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error {
	_, err := r.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"emote_ids": emoteID}},
	)
	return err
}

func (r *MongoRepository) BumpTokenVersion(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"token_version": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
