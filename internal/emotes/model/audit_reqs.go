package model

import (
	"strings"
	"time"
)

type GetAuditLogsReq struct {
	// Type filters by a single audit code; 0 means all.
	Type      int32      `query:"type" validate:"omitempty,min=1,max=70"`
	UserID    string     `query:"user_id" validate:"omitempty,len=24,hexadecimal"`
	StartTime *time.Time `query:"start_time"`
	EndTime   *time.Time `query:"end_time"`
	Page      int        `query:"page" validate:"omitempty,min=1"`
	Size      int        `query:"size" validate:"omitempty,min=1,max=100"`
}

func (r *GetAuditLogsReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = 20
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime) {
		return &ErrorDetail{Code: "bad_request", Message: "end_time must not precede start_time"}
	}
	return nil
}

type AuditLogPage struct {
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	Size    int           `json:"size"`
	Entries []*AuditEntry `json:"entries"`
}
