package repository

import (
	"context"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateRole(ctx context.Context, role *model.Role) error {
	res, err := r.Roles.InsertOne(ctx, role)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		role.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	var role model.Role
	err := r.Roles.FindOne(ctx, bson.M{"_id": id}).Decode(&role)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *MongoRepository) UpdateRole(ctx context.Context, role *model.Role) error {
	update := bson.M{"$set": bson.M{
		"name":     role.Name,
		"color":    role.Color,
		"allowed":  role.Allowed,
		"denied":   role.Denied,
		"position": role.Position,
	}}
	res, err := r.Roles.UpdateOne(ctx, bson.M{"_id": role.ID}, update)
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

func (r *MongoRepository) DeleteRole(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Roles.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) ListRoles(ctx context.Context) ([]*model.Role, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "position", Value: -1},
		{Key: "name", Value: 1},
	})
	cursor, err := r.Roles.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.Role
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *MongoRepository) ClearRoleAssignments(ctx context.Context, roleID primitive.ObjectID) (int64, error) {
	res, err := r.Users.UpdateMany(ctx,
		bson.M{"role_id": roleID},
		bson.M{"$unset": bson.M{"role_id": ""}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
