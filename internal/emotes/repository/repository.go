package repository

import (
	"context"
	"errors"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDuplicate = errors.New("duplicate record")

// Repository is the persistence boundary for all mutable documents.
// Get* methods return (nil, nil) when no document matches.
type Repository interface {
	// Initialize indexes
	EnsureIndexes(ctx context.Context) error

	// Emotes
	CreateEmote(ctx context.Context, emote *model.Emote) error
	GetEmote(ctx context.Context, id primitive.ObjectID) (*model.Emote, error)
	// UpdateEmote rewrites the mutable fields of the emote document
	UpdateEmote(ctx context.Context, emote *model.Emote) error
	FindEmotes(ctx context.Context, req model.ListEmotesReq) ([]*model.Emote, int64, error)

	// Users
	CreateUser(ctx context.Context, user *model.TwitchUser) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*model.TwitchUser, error)
	GetUserByTwitchID(ctx context.Context, twitchID string) (*model.TwitchUser, error)
	SetUserRole(ctx context.Context, userID primitive.ObjectID, roleID *primitive.ObjectID) error
	AddEditor(ctx context.Context, userID, editorID primitive.ObjectID) error
	RemoveEditor(ctx context.Context, userID, editorID primitive.ObjectID) error
	AddUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error
	RemoveUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error
	// BumpTokenVersion invalidates every access token minted for the user
	BumpTokenVersion(ctx context.Context, userID primitive.ObjectID) error

	// Roles
	CreateRole(ctx context.Context, role *model.Role) error
	GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	UpdateRole(ctx context.Context, role *model.Role) error
	DeleteRole(ctx context.Context, id primitive.ObjectID) error
	ListRoles(ctx context.Context) ([]*model.Role, error)
	// ClearRoleAssignments unsets role_id on every user holding the role
	ClearRoleAssignments(ctx context.Context, roleID primitive.ObjectID) (int64, error)

	// Bans
	CreateBan(ctx context.Context, ban *model.Ban) error
	GetActiveBan(ctx context.Context, userID primitive.ObjectID) (*model.Ban, error)
	DeactivateBans(ctx context.Context, userID primitive.ObjectID) (int64, error)

	// Reports
	CreateReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, id primitive.ObjectID) (*model.Report, error)
	ClearReport(ctx context.Context, id primitive.ObjectID) error
	FindReports(ctx context.Context, req model.ListReportsReq) ([]*model.Report, int64, error)
}

// AuditRepository stores the append-only audit log. Entries are never
// updated or deleted.
type AuditRepository interface {
	CreateAuditEntry(ctx context.Context, entry *model.AuditEntry) error
	FindAuditEntries(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditEntry, int64, error)
	EnsureAuditIndexes(ctx context.Context) error
}
