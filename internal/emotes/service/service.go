package service

import (
	"context"
	"errors"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict: record already exists")
	ErrBadRequest   = errors.New("bad request")
)

// RoleProvider resolves roles for permission checks. Satisfied by the
// repository directly or by the redis cache wrapping it.
type RoleProvider interface {
	GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	Invalidate(ctx context.Context, id primitive.ObjectID) error
}

type EmoteService interface {
	// Emotes
	CreateEmote(ctx context.Context, callerID string, req model.CreateEmoteReq) (*model.Emote, error)
	GetEmote(ctx context.Context, id string) (*model.Emote, error)
	ListEmotes(ctx context.Context, req model.ListEmotesReq) (*model.EmotePage, error)
	UpdateEmote(ctx context.Context, callerID, id string, req model.UpdateEmoteReq) (*model.Emote, error)
	DeleteEmote(ctx context.Context, callerID, id, reason string) error

	// Roles
	CreateRole(ctx context.Context, callerID string, req model.RoleUpsertReq) (*model.Role, error)
	UpdateRole(ctx context.Context, callerID, id string, req model.RoleUpsertReq) (*model.Role, error)
	DeleteRole(ctx context.Context, callerID, id string) error
	ListRoles(ctx context.Context) ([]*model.Role, error)

	// Users
	GetMe(ctx context.Context, callerID string) (*model.TwitchUser, error)
	GetUser(ctx context.Context, id string) (*model.TwitchUser, error)
	CreateUser(ctx context.Context, callerID string, req model.CreateUserReq) (*model.TwitchUser, error)
	SetUserRole(ctx context.Context, callerID, userID string, req model.SetUserRoleReq) error
	AddEditor(ctx context.Context, callerID, userID string, req model.AddEditorReq) error
	RemoveEditor(ctx context.Context, callerID, userID, editorID string) error

	// Bans
	BanUser(ctx context.Context, callerID string, req model.CreateBanReq) (*model.Ban, error)
	UnbanUser(ctx context.Context, callerID, userID string) error

	// Reports
	CreateReport(ctx context.Context, callerID string, req model.CreateReportReq) (*model.Report, error)
	ListReports(ctx context.Context, callerID string, req model.ListReportsReq) (*model.ReportPage, error)
	ClearReport(ctx context.Context, callerID, id string) error

	// Audit
	GetAuditLogs(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogPage, error)
}

type Service struct {
	Repo  repository.Repository
	Audit repository.AuditRepository
	Roles RoleProvider
	// Defaults is the permission baseline applied before role bits;
	// either model.DefaultPermissions or model.LegacyDefaultPermissions.
	Defaults model.PermissionSet
}

func NewService(repo repository.Repository, audit repository.AuditRepository, roles RoleProvider, defaults model.PermissionSet) *Service {
	return &Service{
		Repo:     repo,
		Audit:    audit,
		Roles:    roles,
		Defaults: defaults,
	}
}
