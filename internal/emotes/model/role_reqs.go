package model

import "strings"

// RoleUpsertReq creates or updates a role. Allowed/Denied arrive as raw
// integers and are wrapped without validation; unknown bits are inert.
type RoleUpsertReq struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Color    int32  `json:"color" validate:"omitempty,min=0,max=16777215"`
	Allowed  int64  `json:"allowed"`
	Denied   int64  `json:"denied"`
	Position int32  `json:"position" validate:"omitempty,min=0"`
}

func (r *RoleUpsertReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type SetUserRoleReq struct {
	// RoleID assigns the role; empty string clears the assignment.
	RoleID string `json:"role_id" validate:"omitempty,len=24,hexadecimal"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (r *SetUserRoleReq) Validate() error {
	r.RoleID = strings.TrimSpace(r.RoleID)
	r.Reason = strings.TrimSpace(r.Reason)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
