package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Emote statuses. Stored as int32.
const (
	EmoteStatusDeleted int32 = iota - 1
	EmoteStatusProcessing
	EmoteStatusPending
	EmoteStatusDisabled
	EmoteStatusLive
)

// Emote visibility flags. Stored as a small bitfield.
const (
	EmoteVisibilityPrivate int32 = 1 << 0
	EmoteVisibilityGlobal  int32 = 1 << 1
)

// Emote is a single uploaded emote document.
type Emote struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	OwnerID      primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Visibility   int32              `bson:"visibility" json:"visibility"`
	Status       int32              `bson:"status" json:"status"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Mime         string             `bson:"mime,omitempty" json:"mime,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	LastModified time.Time          `bson:"last_modified" json:"last_modified"`
}

// BearerToken is the OAuth grant received from Twitch on login. It is
// embedded in the user document and has no behavior of its own.
type BearerToken struct {
	AccessToken  string   `bson:"access_token" json:"access_token"`
	RefreshToken string   `bson:"refresh_token" json:"refresh_token"`
	ExpiresIn    int64    `bson:"expires_in" json:"expires_in"`
	Scope        []string `bson:"scope,omitempty" json:"scope,omitempty"`
	TokenType    string   `bson:"token_type" json:"token_type"`
}

// TwitchUser is a platform account linked to a Twitch identity.
type TwitchUser struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	TwitchID        string               `bson:"twitch_id" json:"twitch_id"`
	Login           string               `bson:"login" json:"login"`
	DisplayName     string               `bson:"display_name" json:"display_name"`
	Email           string               `bson:"email,omitempty" json:"-"`
	BroadcasterType string               `bson:"broadcaster_type,omitempty" json:"broadcaster_type,omitempty"`
	ProfileImageURL string               `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`
	RoleID          *primitive.ObjectID  `bson:"role_id,omitempty" json:"role_id,omitempty"`
	EmoteIDs        []primitive.ObjectID `bson:"emote_ids,omitempty" json:"emote_ids,omitempty"`
	EditorIDs       []primitive.ObjectID `bson:"editor_ids,omitempty" json:"editor_ids,omitempty"`
	// TokenVersion is embedded in issued access tokens; bumping it on ban
	// or logout invalidates everything already minted.
	TokenVersion int64        `bson:"token_version" json:"-"`
	OAuth        *BearerToken `bson:"oauth,omitempty" json:"-"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
}

// IsEditorOf reports whether editorID is listed on the user.
func (u *TwitchUser) IsEditorOf(editorID primitive.ObjectID) bool {
	for _, id := range u.EditorIDs {
		if id == editorID {
			return true
		}
	}
	return false
}

// Role groups permissions for assignment to users. Allowed and Denied are
// independent bit patterns; which one wins is decided by the service layer.
type Role struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Color    int32              `bson:"color" json:"color"`
	Allowed  PermissionSet      `bson:"allowed" json:"allowed"`
	Denied   PermissionSet      `bson:"denied" json:"denied"`
	Position int32              `bson:"position" json:"position"`
}

// Ban blocks a user from authenticating while active.
type Ban struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	Reason     string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Active     bool               `bson:"active" json:"active"`
	IssuedByID primitive.ObjectID `bson:"issued_by_id" json:"issued_by_id"`
	ExpireAt   *time.Time         `bson:"expire_at,omitempty" json:"expire_at,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// Expired reports whether the ban has a deadline in the past.
func (b *Ban) Expired(now time.Time) bool {
	return b.ExpireAt != nil && b.ExpireAt.Before(now)
}

// Report is a user-filed complaint about an emote or another user.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID primitive.ObjectID `bson:"reporter_id" json:"reporter_id"`
	Target     *AuditTarget       `bson:"target,omitempty" json:"target,omitempty"`
	Reason     string             `bson:"reason" json:"reason"`
	Cleared    bool               `bson:"cleared" json:"cleared"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
