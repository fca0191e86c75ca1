package service

import (
	"context"
	"errors"

	"emotehub/internal/emotes/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// resolveReportTarget verifies the referenced document exists.
func (s *Service) resolveReportTarget(ctx context.Context, collection string, id primitive.ObjectID) (*model.AuditTarget, error) {
	switch collection {
	case model.CollectionEmotes:
		emote, err := s.Repo.GetEmote(ctx, id)
		if err != nil {
			return nil, err
		}
		if emote == nil || emote.Status == model.EmoteStatusDeleted {
			return nil, ErrNotFound
		}
	case model.CollectionUsers:
		user, err := s.Repo.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrNotFound
		}
	default:
		return nil, ErrBadRequest
	}
	return &model.AuditTarget{Collection: collection, ID: id}, nil
}

func (s *Service) CreateReport(ctx context.Context, callerID string, req model.CreateReportReq) (*model.Report, error) {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermCreateReports) {
		return nil, ErrForbidden
	}
	tid, err := parseObjectID(req.TargetID)
	if err != nil {
		return nil, err
	}
	target, err := s.resolveReportTarget(ctx, req.TargetCollection, tid)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ReporterID: actor.ID,
		Target:     target,
		Reason:     req.Reason,
	}
	if err := s.Repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, model.AuditReportCreate, actor.ID, target, nil, req.Reason)

	return report, nil
}

func (s *Service) ListReports(ctx context.Context, callerID string, req model.ListReportsReq) (*model.ReportPage, error) {
	_, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermManageReports) {
		return nil, ErrForbidden
	}

	reports, total, err := s.Repo.FindReports(ctx, req)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	return &model.ReportPage{
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		Reports: reports,
	}, nil
}

func (s *Service) ClearReport(ctx context.Context, callerID, id string) error {
	actor, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return err
	}
	if !perms.Has(model.PermManageReports) {
		return ErrForbidden
	}
	rid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	report, err := s.Repo.GetReport(ctx, rid)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrNotFound
	}
	if report.Cleared {
		return ErrConflict
	}

	if err := s.Repo.ClearReport(ctx, rid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	s.recordAudit(ctx, model.AuditAdminReportClear, actor.ID,
		&model.AuditTarget{Collection: "reports", ID: rid}, nil, "")

	return nil
}

func (s *Service) GetAuditLogs(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogPage, error) {
	_, perms, err := s.requireActor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(model.PermManageUsers) {
		return nil, ErrForbidden
	}

	entries, total, err := s.Audit.FindAuditEntries(ctx, req)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.AuditEntry{}
	}
	return &model.AuditLogPage{
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		Entries: entries,
	}, nil
}
