package model

import "strings"

type CreateEmoteReq struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Tags       []string `json:"tags" validate:"omitempty,max=6,dive,min=2,max=30"`
	Mime       string   `json:"mime" validate:"omitempty,max=50"`
	Visibility int32    `json:"visibility"`
}

func (r *CreateEmoteReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Mime = strings.TrimSpace(r.Mime)
	for i := range r.Tags {
		r.Tags[i] = strings.ToLower(strings.TrimSpace(r.Tags[i]))
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// UpdateEmoteReq carries partial updates; nil fields are left untouched.
type UpdateEmoteReq struct {
	Name       *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Tags       []string `json:"tags" validate:"omitempty,max=6,dive,min=2,max=30"`
	Visibility *int32   `json:"visibility"`
	Status     *int32   `json:"status"`
	Reason     string   `json:"reason" validate:"omitempty,max=500"`
}

func (r *UpdateEmoteReq) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	for i := range r.Tags {
		r.Tags[i] = strings.ToLower(strings.TrimSpace(r.Tags[i]))
	}
	r.Reason = strings.TrimSpace(r.Reason)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Status != nil && (*r.Status < EmoteStatusDeleted || *r.Status > EmoteStatusLive) {
		return &ErrorDetail{Code: "bad_request", Message: "unknown emote status"}
	}
	if r.Name == nil && r.Tags == nil && r.Visibility == nil && r.Status == nil {
		return &ErrorDetail{Code: "bad_request", Message: "no fields to update"}
	}
	return nil
}

type ListEmotesReq struct {
	Name    string `query:"name" validate:"omitempty,max=100"`
	OwnerID string `query:"owner_id" validate:"omitempty,max=50"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	Size    int    `query:"size" validate:"omitempty,min=1,max=100"`
}

func (r *ListEmotesReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.OwnerID = strings.TrimSpace(r.OwnerID)
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

// EmotePage is the paginated response for emote listings.
type EmotePage struct {
	Total  int64    `json:"total"`
	Page   int      `json:"page"`
	Size   int      `json:"size"`
	Emotes []*Emote `json:"emotes"`
}
