package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections groups the collection names the repository binds to.
type Collections struct {
	Emotes  string
	Users   string
	Roles   string
	Bans    string
	Reports string
	Audit   string
}

type MongoRepository struct {
	Emotes  *mongo.Collection
	Users   *mongo.Collection
	Roles   *mongo.Collection
	Bans    *mongo.Collection
	Reports *mongo.Collection
	Audit   *mongo.Collection
	Client  *mongo.Client
}

func NewMongoRepository(db *mongo.Database, names Collections) *MongoRepository {
	return &MongoRepository{
		Emotes:  db.Collection(names.Emotes),
		Users:   db.Collection(names.Users),
		Roles:   db.Collection(names.Roles),
		Bans:    db.Collection(names.Bans),
		Reports: db.Collection(names.Reports),
		Audit:   db.Collection(names.Audit),
		Client:  db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// Users: twitch_id and login are both unique identities.
	idxUserTwitchID := mongo.IndexModel{
		Keys:    bson.D{{Key: "twitch_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_twitch_id"),
	}
	idxUserLogin := mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_login"),
	}
	if _, err := r.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{idxUserTwitchID, idxUserLogin}); err != nil {
		return err
	}

	// Emotes: one live emote name per owner; deleted emotes free the name.
	idxEmoteOwnerName := mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_emote_name_per_owner").
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$gte": 0},
			}),
	}
	idxEmoteName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_emote_name"),
	}
	if _, err := r.Emotes.Indexes().CreateMany(ctx, []mongo.IndexModel{idxEmoteOwnerName, idxEmoteName}); err != nil {
		return err
	}

	// Roles: names are unique.
	idxRoleName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_role_name"),
	}
	if _, err := r.Roles.Indexes().CreateOne(ctx, idxRoleName); err != nil {
		return err
	}

	// Bans: at most one active ban per user.
	idxActiveBan := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_active_ban").
			SetPartialFilterExpression(bson.M{"active": true}),
	}
	if _, err := r.Bans.Indexes().CreateOne(ctx, idxActiveBan); err != nil {
		return err
	}

	// Reports: open-report listing.
	idxReportCleared := mongo.IndexModel{
		Keys: bson.D{
			{Key: "cleared", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_report_cleared"),
	}
	_, err := r.Reports.Indexes().CreateOne(ctx, idxReportCleared)
	return err
}
