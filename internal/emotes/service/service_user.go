package service

import (
	"context"
	"errors"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Service) GetMe(ctx context.Context, callerID string) (*model.TwitchUser, error) {
	actor, _, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.TwitchUser, error) {
	uid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.Repo.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, callerID string, req model.CreateUserReq) (*model.TwitchUser, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermManageUsers) {
		return nil, ErrForbidden
	}

	user := &model.TwitchUser{
		TwitchID:    req.TwitchID,
		Login:       req.Login,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.recordAudit(ctx, model.AuditUserCreate, actor.ID, userTarget(user.ID),
		[]model.AuditChange{{Key: "login", New: user.Login}}, "")

	return user, nil
}

func (s *Service) SetUserRole(ctx context.Context, callerID, userID string, req model.SetUserRoleReq) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	if !perms.Has(model.PermManageUsers) {
		return ErrForbidden
	}
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	target, err := s.Repo.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	var newRoleID *primitive.ObjectID
	if req.RoleID != "" {
		rid, err := parseObjectID(req.RoleID)
		if err != nil {
			return err
		}
		role, err := s.Roles.GetRole(ctx, rid)
		if err != nil {
			return err
		}
		if role == nil {
			return ErrNotFound
		}
		newRoleID = &rid
	}

	if err := s.Repo.SetUserRole(ctx, uid, newRoleID); err != nil {
		return err
	}

	var oldVal, newVal interface{}
	if target.RoleID != nil {
		oldVal = target.RoleID.Hex()
	}
	if newRoleID != nil {
		newVal = newRoleID.Hex()
	}
	s.recordAudit(ctx, model.AuditUserRoleSet, actor.ID, userTarget(uid),
		[]model.AuditChange{{Key: "role_id", Old: oldVal, New: newVal}}, req.Reason)

	return nil
}

// editorPermissionFor picks the flag needed to manage a user's editor list:
// the owner curates their own list with MANAGE_EDITORS, touching someone
// else's list takes MANAGE_USERS.
func editorPermissionFor(actor *model.TwitchUser, targetID primitive.ObjectID) model.PermissionSet {
	if actor.ID == targetID {
		return model.PermManageEditors
	}
	return model.PermManageUsers
}

func (s *Service) AddEditor(ctx context.Context, callerID, userID string, req model.AddEditorReq) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	if !perms.Has(editorPermissionFor(actor, uid)) {
		return ErrForbidden
	}
	eid, err := parseObjectID(req.EditorID)
	if err != nil {
		return err
	}
	if eid == uid {
		return ErrBadRequest
	}

	editor, err := s.Repo.GetUser(ctx, eid)
	if err != nil {
		return err
	}
	if editor == nil {
		return ErrNotFound
	}

	if err := s.Repo.AddEditor(ctx, uid, eid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	s.recordAudit(ctx, model.AuditUserEditorAdd, actor.ID, userTarget(uid),
		[]model.AuditChange{{Key: "editor_ids", New: eid.Hex()}}, "")

	return nil
}

func (s *Service) RemoveEditor(ctx context.Context, callerID, userID, editorID string) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	if !perms.Has(editorPermissionFor(actor, uid)) {
		return ErrForbidden
	}
	eid, err := parseObjectID(editorID)
	if err != nil {
		return err
	}

	if err := s.Repo.RemoveEditor(ctx, uid, eid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	s.recordAudit(ctx, model.AuditUserEditorRemove, actor.ID, userTarget(uid),
		[]model.AuditChange{{Key: "editor_ids", Old: eid.Hex()}}, "")

	return nil
}

func (s *Service) BanUser(ctx context.Context, callerID string, req model.CreateBanReq) (*model.Ban, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermBanUsers) {
		return nil, ErrForbidden
	}
	uid, err := parseObjectID(req.UserID)
	if err != nil {
		return nil, err
	}
	if uid == actor.ID {
		return nil, ErrBadRequest
	}

	target, err := s.Repo.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}

	ban := &model.Ban{
		UserID:     uid,
		Reason:     req.Reason,
		IssuedByID: actor.ID,
		ExpireAt:   req.ExpireAt,
	}
	if err := s.Repo.CreateBan(ctx, ban); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// Kill every token the target already holds.
	if err := s.Repo.BumpTokenVersion(ctx, uid); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, model.AuditUserBan, actor.ID, userTarget(uid), nil, req.Reason)

	return ban, nil
}

func (s *Service) UnbanUser(ctx context.Context, callerID, userID string) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	if !perms.Has(model.PermBanUsers) {
		return ErrForbidden
	}
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}

	modified, err := s.Repo.DeactivateBans(ctx, uid)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNotFound
	}

	s.recordAudit(ctx, model.AuditUserUnban, actor.ID, userTarget(uid), nil, "")

	return nil
}
