package service

import (
	"context"
	"errors"
	"strings"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"
)

func (s *Service) CreateEmote(ctx context.Context, callerID string, req model.CreateEmoteReq) (*model.Emote, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermCreateEmote) {
		return nil, ErrForbidden
	}

	emote := &model.Emote{
		Name:       strings.TrimSpace(req.Name),
		OwnerID:    actor.ID,
		Visibility: req.Visibility,
		// Upload processing happens upstream of this API; emotes arrive ready.
		Status: model.EmoteStatusLive,
		Tags:   req.Tags,
		Mime:   req.Mime,
	}

	if err := s.Repo.CreateEmote(ctx, emote); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if err := s.Repo.AddUserEmote(ctx, actor.ID, emote.ID); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, model.AuditEmoteCreate, actor.ID, emoteTarget(emote.ID),
		[]model.AuditChange{{Key: "name", New: emote.Name}}, "")

	return emote, nil
}

func (s *Service) GetEmote(ctx context.Context, id string) (*model.Emote, error) {
	eid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	emote, err := s.Repo.GetEmote(ctx, eid)
	if err != nil {
		return nil, err
	}
	if emote == nil || emote.Status == model.EmoteStatusDeleted {
		return nil, ErrNotFound
	}
	return emote, nil
}

func (s *Service) ListEmotes(ctx context.Context, req model.ListEmotesReq) (*model.EmotePage, error) {
	emotes, total, err := s.Repo.FindEmotes(ctx, req)
	if err != nil {
		return nil, err
	}
	if emotes == nil {
		emotes = []*model.Emote{}
	}
	return &model.EmotePage{
		Total:  total,
		Page:   req.Page,
		Size:   req.Size,
		Emotes: emotes,
	}, nil
}

// editPermissionFor picks the flag required to touch the emote: owners and
// the owner's editors edit with EDIT_EMOTE_SELF, everyone else needs
// EDIT_EMOTE_ALL.
func (s *Service) editPermissionFor(ctx context.Context, actor *model.TwitchUser, emote *model.Emote) (model.PermissionSet, error) {
	if emote.OwnerID == actor.ID {
		return model.PermEditEmoteSelf, nil
	}
	owner, err := s.Repo.GetUser(ctx, emote.OwnerID)
	if err != nil {
		return 0, err
	}
	if owner != nil && owner.IsEditorOf(actor.ID) {
		return model.PermEditEmoteSelf, nil
	}
	return model.PermEditEmoteAll, nil
}

func (s *Service) UpdateEmote(ctx context.Context, callerID, id string, req model.UpdateEmoteReq) (*model.Emote, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	eid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	emote, err := s.Repo.GetEmote(ctx, eid)
	if err != nil {
		return nil, err
	}
	if emote == nil || emote.Status == model.EmoteStatusDeleted {
		return nil, ErrNotFound
	}

	required, err := s.editPermissionFor(ctx, actor, emote)
	if err != nil {
		return nil, err
	}
	if !perms.Has(required) {
		return nil, ErrForbidden
	}

	auditType := model.AuditEmoteUpdate
	var changes []model.AuditChange
	if req.Name != nil && *req.Name != emote.Name {
		changes = append(changes, model.AuditChange{Key: "name", Old: emote.Name, New: *req.Name})
		emote.Name = *req.Name
	}
	if req.Tags != nil {
		changes = append(changes, model.AuditChange{Key: "tags", Old: emote.Tags, New: req.Tags})
		emote.Tags = req.Tags
	}
	if req.Visibility != nil && *req.Visibility != emote.Visibility {
		changes = append(changes, model.AuditChange{Key: "visibility", Old: emote.Visibility, New: *req.Visibility})
		emote.Visibility = *req.Visibility
	}
	if req.Status != nil && *req.Status != emote.Status {
		if *req.Status == model.EmoteStatusDeleted {
			// Deletion goes through DeleteEmote so ownership bookkeeping runs.
			return nil, ErrBadRequest
		}
		changes = append(changes, model.AuditChange{Key: "status", Old: emote.Status, New: *req.Status})
		if *req.Status == model.EmoteStatusDisabled {
			auditType = model.AuditEmoteDisable
		}
		emote.Status = *req.Status
	}

	if len(changes) == 0 {
		return emote, nil
	}

	if err := s.Repo.UpdateEmote(ctx, emote); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.recordAudit(ctx, auditType, actor.ID, emoteTarget(emote.ID), changes, req.Reason)

	return emote, nil
}

func (s *Service) DeleteEmote(ctx context.Context, callerID, id, reason string) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	eid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	emote, err := s.Repo.GetEmote(ctx, eid)
	if err != nil {
		return err
	}
	if emote == nil || emote.Status == model.EmoteStatusDeleted {
		return ErrNotFound
	}

	required, err := s.editPermissionFor(ctx, actor, emote)
	if err != nil {
		return err
	}
	if !perms.Has(required) {
		return ErrForbidden
	}

	oldStatus := emote.Status
	emote.Status = model.EmoteStatusDeleted
	if err := s.Repo.UpdateEmote(ctx, emote); err != nil {
		return err
	}
	if err := s.Repo.RemoveUserEmote(ctx, emote.OwnerID, emote.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, model.AuditEmoteDelete, actor.ID, emoteTarget(emote.ID),
		[]model.AuditChange{{Key: "status", Old: oldStatus, New: model.EmoteStatusDeleted}}, reason)

	return nil
}
