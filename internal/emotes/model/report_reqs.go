package model

import "strings"

// Collections a report may target.
const (
	CollectionEmotes = "emotes"
	CollectionUsers  = "users"
)

type CreateReportReq struct {
	TargetCollection string `json:"target_collection" validate:"required,oneof=emotes users"`
	TargetID         string `json:"target_id" validate:"required,len=24,hexadecimal"`
	Reason           string `json:"reason" validate:"required,min=3,max=1000"`
}

func (r *CreateReportReq) Validate() error {
	r.TargetCollection = strings.ToLower(strings.TrimSpace(r.TargetCollection))
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.Reason = strings.TrimSpace(r.Reason)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ListReportsReq struct {
	Cleared *bool `query:"cleared"`
	Page    int   `query:"page" validate:"omitempty,min=1"`
	Size    int   `query:"size" validate:"omitempty,min=1,max=100"`
}

func (r *ListReportsReq) Validate() error {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = 20
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ReportPage struct {
	Total   int64     `json:"total"`
	Page    int       `json:"page"`
	Size    int       `json:"size"`
	Reports []*Report `json:"reports"`
}
