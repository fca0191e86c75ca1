package model

import (
	"strings"
	"time"
)

type CreateUserReq struct {
	TwitchID    string `json:"twitch_id" validate:"required,max=50"`
	Login       string `json:"login" validate:"required,min=2,max=50"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (r *CreateUserReq) Validate() error {
	r.TwitchID = strings.TrimSpace(r.TwitchID)
	r.Login = strings.ToLower(strings.TrimSpace(r.Login))
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.DisplayName == "" {
		r.DisplayName = r.Login
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type AddEditorReq struct {
	EditorID string `json:"editor_id" validate:"required,len=24,hexadecimal"`
}

func (r *AddEditorReq) Validate() error {
	r.EditorID = strings.TrimSpace(r.EditorID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateBanReq struct {
	UserID   string     `json:"user_id" validate:"required,len=24,hexadecimal"`
	Reason   string     `json:"reason" validate:"omitempty,max=500"`
	ExpireAt *time.Time `json:"expire_at"`
}

func (r *CreateBanReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Reason = strings.TrimSpace(r.Reason)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.ExpireAt != nil && r.ExpireAt.Before(time.Now()) {
		return &ErrorDetail{Code: "bad_request", Message: "expire_at must be in the future"}
	}
	return nil
}
