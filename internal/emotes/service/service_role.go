package service

import (
	"context"
	"errors"
	"strings"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Service) CreateRole(ctx context.Context, callerID string, req model.RoleUpsertReq) (*model.Role, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermManageRoles) {
		return nil, ErrForbidden
	}

	role := &model.Role{
		Name:     strings.TrimSpace(req.Name),
		Color:    req.Color,
		Allowed:  model.PermissionSetFromRaw(req.Allowed),
		Denied:   model.PermissionSetFromRaw(req.Denied),
		Position: req.Position,
	}

	if err := s.Repo.CreateRole(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.recordAudit(ctx, model.AuditAdminRoleCreate, actor.ID,
		&model.AuditTarget{Collection: "roles", ID: role.ID},
		[]model.AuditChange{
			{Key: "name", New: role.Name},
			{Key: "allowed", New: role.Allowed.Raw()},
			{Key: "denied", New: role.Denied.Raw()},
		}, "")

	return role, nil
}

func (s *Service) UpdateRole(ctx context.Context, callerID, id string, req model.RoleUpsertReq) (*model.Role, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermManageRoles) {
		return nil, ErrForbidden
	}
	rid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	role, err := s.Repo.GetRole(ctx, rid)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrNotFound
	}

	var changes []model.AuditChange
	if req.Name != role.Name {
		changes = append(changes, model.AuditChange{Key: "name", Old: role.Name, New: req.Name})
	}
	if req.Color != role.Color {
		changes = append(changes, model.AuditChange{Key: "color", Old: role.Color, New: req.Color})
	}
	if req.Allowed != role.Allowed.Raw() {
		changes = append(changes, model.AuditChange{Key: "allowed", Old: role.Allowed.Raw(), New: req.Allowed})
	}
	if req.Denied != role.Denied.Raw() {
		changes = append(changes, model.AuditChange{Key: "denied", Old: role.Denied.Raw(), New: req.Denied})
	}
	if req.Position != role.Position {
		changes = append(changes, model.AuditChange{Key: "position", Old: role.Position, New: req.Position})
	}

	role.Name = strings.TrimSpace(req.Name)
	role.Color = req.Color
	role.Allowed = model.PermissionSetFromRaw(req.Allowed)
	role.Denied = model.PermissionSetFromRaw(req.Denied)
	role.Position = req.Position

	if err := s.Repo.UpdateRole(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// Stale cached bits would leak revoked permissions until TTL expiry.
	if err := s.Roles.Invalidate(ctx, role.ID); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.recordAudit(ctx, model.AuditAdminRoleUpdate, actor.ID,
			&model.AuditTarget{Collection: "roles", ID: role.ID}, changes, "")
	}

	return role, nil
}

func (s *Service) DeleteRole(ctx context.Context, callerID, id string) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	if !perms.Has(model.PermManageRoles) {
		return ErrForbidden
	}
	rid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteRole(ctx, rid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.Repo.ClearRoleAssignments(ctx, rid); err != nil {
		return err
	}
	if err := s.Roles.Invalidate(ctx, rid); err != nil {
		return err
	}

	s.recordAudit(ctx, model.AuditAdminRoleDelete, actor.ID,
		&model.AuditTarget{Collection: "roles", ID: rid}, nil, "")

	return nil
}

func (s *Service) ListRoles(ctx context.Context) ([]*model.Role, error) {
	roles, err := s.Repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []*model.Role{}
	}
	return roles, nil
}
