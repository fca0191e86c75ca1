package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PermissionSet is a bitmask over the closed permission flag table below.
// Values are pure: every operation returns a new set instead of mutating the
// receiver, so Allowed/Denied sets shared between Role copies never alias.
//
// Unknown high bits loaded from storage are preserved by Raw/FromRaw but are
// never matched by Has, so old readers and new writers can share documents
// without a schema version.
type PermissionSet uint64

// Permission flags. Bit positions are frozen: they are the stored wire format
// of Role.Allowed / Role.Denied and must never be reordered.
const (
	PermCreateEmote   PermissionSet = 1 << 0
	PermEditEmoteSelf PermissionSet = 1 << 1
	PermEditEmoteAll  PermissionSet = 1 << 2 // elevated
	PermCreateReports PermissionSet = 1 << 3
	PermManageReports PermissionSet = 1 << 4 // elevated
	PermBanUsers      PermissionSet = 1 << 5 // elevated
	PermAdministrator PermissionSet = 1 << 6 // elevated, satisfies every check
	PermManageRoles   PermissionSet = 1 << 7
	PermManageUsers   PermissionSet = 1 << 8 // elevated
	PermManageEditors PermissionSet = 1 << 9
)

// DefaultPermissions is the baseline granted to every user regardless of
// role: the union of the four everyday flags.
const DefaultPermissions = PermCreateEmote | PermEditEmoteSelf | PermCreateReports | PermManageEditors

// LegacyDefaultPermissions reproduces the historical default expression,
// which combined the same four flags with AND instead of OR. The flags are
// disjoint single bits, so the result is the empty set. Deployments that
// grew up with the zero default can keep it via config
// (LEGACY_DEFAULT_PERMISSIONS); everyone else gets DefaultPermissions.
const LegacyDefaultPermissions = PermCreateEmote & PermEditEmoteSelf & PermCreateReports & PermManageEditors

// PermissionNames maps each defined flag to its canonical name, in bit order.
var PermissionNames = map[PermissionSet]string{
	PermCreateEmote:   "CREATE_EMOTE",
	PermEditEmoteSelf: "EDIT_EMOTE_SELF",
	PermEditEmoteAll:  "EDIT_EMOTE_ALL",
	PermCreateReports: "CREATE_REPORTS",
	PermManageReports: "MANAGE_REPORTS",
	PermBanUsers:      "BAN_USERS",
	PermAdministrator: "ADMINISTRATOR",
	PermManageRoles:   "MANAGE_ROLES",
	PermManageUsers:   "MANAGE_USERS",
	PermManageEditors: "MANAGE_EDITORS",
}

// NewPermissionSet builds a set from zero or more flags.
func NewPermissionSet(flags ...PermissionSet) PermissionSet {
	var p PermissionSet
	for _, f := range flags {
		p |= f
	}
	return p
}

// PermissionSetFromRaw wraps a stored integer without validation.
func PermissionSetFromRaw(raw int64) PermissionSet {
	return PermissionSet(raw)
}

// Raw returns the stored form of the set.
func (p PermissionSet) Raw() int64 {
	return int64(p)
}

// Union returns the flags present in either set.
func (p PermissionSet) Union(other PermissionSet) PermissionSet {
	return p | other
}

// Intersect returns the flags present in both sets.
func (p PermissionSet) Intersect(other PermissionSet) PermissionSet {
	return p & other
}

// Subtract returns the flags present in p and absent from other.
func (p PermissionSet) Subtract(other PermissionSet) PermissionSet {
	return p &^ other
}

// Has reports whether every bit of flag is set. Holders of ADMINISTRATOR
// pass every check without the individual flags being set.
func (p PermissionSet) Has(flag PermissionSet) bool {
	if p&PermAdministrator != 0 {
		return true
	}
	return p&flag == flag
}

// HasAll reports whether Has holds for every listed flag.
func (p PermissionSet) HasAll(flags ...PermissionSet) bool {
	for _, f := range flags {
		if !p.Has(f) {
			return false
		}
	}
	return true
}

// MarshalBSONValue stores the set as a BSON int64. The cast is a
// two's-complement passthrough, so all 64 bits round-trip.
func (p PermissionSet) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int64(p))
}

// UnmarshalBSONValue accepts any numeric BSON type, since documents written
// by earlier deployments may hold int32 or double values.
func (p *PermissionSet) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int64:
		*p = PermissionSet(rv.Int64())
	case bsontype.Int32:
		*p = PermissionSet(rv.Int32())
	case bsontype.Double:
		*p = PermissionSet(int64(rv.Double()))
	default:
		return fmt.Errorf("cannot decode BSON %s into PermissionSet", t)
	}
	return nil
}
