package service

import (
	"context"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrBadRequest
	}
	return oid, nil
}

// requireActor loads the calling user and resolves its effective
// permissions. Unknown callers are unauthorized, not "not found".
func (s *Service) requireActor(ctx context.Context, callerID string) (*model.TwitchUser, model.PermissionSet, error) {
	if callerID == "" {
		return nil, 0, ErrUnauthorized
	}
	uid, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, 0, ErrUnauthorized
	}
	user, err := s.Repo.GetUser(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUnauthorized
	}
	perms, err := s.EffectivePermissions(ctx, user)
	if err != nil {
		return nil, 0, err
	}
	return user, perms, nil
}

// EffectivePermissions composes the configured defaults with the user's role.
// Denied bits win over allowed bits; that precedence is this service's
// policy, not a property of the Role shape itself.
func (s *Service) EffectivePermissions(ctx context.Context, user *model.TwitchUser) (model.PermissionSet, error) {
	perms := s.Defaults
	if user.RoleID != nil {
		role, err := s.Roles.GetRole(ctx, *user.RoleID)
		if err != nil {
			return 0, err
		}
		// A dangling role_id degrades to the defaults.
		if role != nil {
			perms = perms.Union(role.Allowed).Subtract(role.Denied)
		}
	}
	return perms, nil
}

// recordAudit appends an audit entry. Audit failures are logged, never
// propagated: the action itself already happened.
func (s *Service) recordAudit(ctx context.Context, typ int32, actorID primitive.ObjectID, target *model.AuditTarget, changes []model.AuditChange, reason string) {
	entry := &model.AuditEntry{
		Type:         typ,
		ActionUserID: actorID,
		Target:       target,
		Changes:      changes,
		Reason:       reason,
	}
	if err := s.Audit.CreateAuditEntry(ctx, entry); err != nil {
		util.GetLogger().Error("failed to write audit entry", "type", typ, "actor", actorID.Hex(), "error", err)
	}
}

func emoteTarget(id primitive.ObjectID) *model.AuditTarget {
	return &model.AuditTarget{Collection: model.CollectionEmotes, ID: id}
}

func userTarget(id primitive.ObjectID) *model.AuditTarget {
	return &model.AuditTarget{Collection: model.CollectionUsers, ID: id}
}
