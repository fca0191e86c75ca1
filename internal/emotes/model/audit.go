package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit type codes. The ranges partition the space by area:
// 1-20 emote actions, 21-30 auth actions, 31-50 user actions,
// 51-70 administrative actions. Codes are stored as int32 and are part of
// the persisted format, so existing values must never be renumbered.
const (
	AuditEmoteCreate     int32 = 1
	AuditEmoteDelete     int32 = 2
	AuditEmoteDisable    int32 = 3
	AuditEmoteUpdate     int32 = 4
	AuditEmoteMerge      int32 = 5
	AuditEmoteUndoDelete int32 = 6

	AuditAuthIn  int32 = 21
	AuditAuthOut int32 = 22

	AuditUserCreate       int32 = 31
	AuditUserDelete       int32 = 32
	AuditUserBan          int32 = 33
	AuditUserEdit         int32 = 34
	AuditUserUnban        int32 = 35
	AuditUserEditorAdd    int32 = 36
	AuditUserEditorRemove int32 = 37
	AuditUserRoleSet      int32 = 38
	AuditReportCreate     int32 = 39

	AuditAdminRoleCreate  int32 = 51
	AuditAdminRoleUpdate  int32 = 52
	AuditAdminRoleDelete  int32 = 53
	AuditAdminReportClear int32 = 54
)

// AuditTarget references the document an entry acted on.
type AuditTarget struct {
	Collection string             `bson:"collection" json:"collection"`
	ID         primitive.ObjectID `bson:"id" json:"id"`
}

// AuditChange records one field-level change. Old and New carry whatever
// shape the field had; no schema is enforced on them.
type AuditChange struct {
	Key string      `bson:"key" json:"key"`
	Old interface{} `bson:"old,omitempty" json:"old,omitempty"`
	New interface{} `bson:"new,omitempty" json:"new,omitempty"`
}

// AuditEntry records one auditable action (append-only, read-only after
// creation, retained indefinitely).
type AuditEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         int32              `bson:"type" json:"type"`
	ActionUserID primitive.ObjectID `bson:"action_user_id" json:"action_user_id"`
	Target       *AuditTarget       `bson:"target,omitempty" json:"target,omitempty"`
	Changes      []AuditChange      `bson:"changes,omitempty" json:"changes,omitempty"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
