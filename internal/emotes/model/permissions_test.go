package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var allFlags = []PermissionSet{
	PermCreateEmote,
	PermEditEmoteSelf,
	PermEditEmoteAll,
	PermCreateReports,
	PermManageReports,
	PermBanUsers,
	PermAdministrator,
	PermManageRoles,
	PermManageUsers,
	PermManageEditors,
}

func TestPermissionFlagsAreDistinctSingleBits(t *testing.T) {
	seen := map[PermissionSet]bool{}
	for _, f := range allFlags {
		assert.NotZero(t, f)
		// single bit set
		assert.Zero(t, f&(f-1), "flag %s is not a single bit", PermissionNames[f])
		assert.False(t, seen[f], "flag %s duplicated", PermissionNames[f])
		seen[f] = true
	}
	assert.Len(t, PermissionNames, len(allFlags))
}

func TestUnionContainsBothOperands(t *testing.T) {
	for _, f := range allFlags {
		if f == PermAdministrator {
			continue
		}
		for _, g := range allFlags {
			if g == PermAdministrator {
				continue
			}
			u := f.Union(g)
			assert.True(t, u.Has(f))
			assert.True(t, u.Has(g))
		}
	}
}

func TestHasFalseForAbsentFlag(t *testing.T) {
	for _, f := range allFlags {
		if f == PermAdministrator {
			continue
		}
		for _, g := range allFlags {
			if g == f || g == PermAdministrator {
				continue
			}
			assert.False(t, NewPermissionSet(f).Has(g),
				"set {%s} should not contain %s", PermissionNames[f], PermissionNames[g])
		}
	}
}

func TestSetAlgebraIdentities(t *testing.T) {
	s := NewPermissionSet(PermCreateEmote, PermManageRoles, PermBanUsers)
	empty := NewPermissionSet()

	assert.Equal(t, s, s.Union(s))
	assert.Equal(t, s, s.Intersect(s))
	assert.Equal(t, empty, s.Subtract(s))
	assert.Equal(t, s, s.Union(empty))
	assert.Equal(t, empty, s.Intersect(empty))
	assert.Equal(t, s, s.Subtract(empty))
}

func TestSubtractRemovesOnlyNamedFlags(t *testing.T) {
	s := NewPermissionSet(PermCreateEmote, PermEditEmoteSelf, PermCreateReports)
	out := s.Subtract(NewPermissionSet(PermEditEmoteSelf, PermBanUsers))

	assert.True(t, out.Has(PermCreateEmote))
	assert.True(t, out.Has(PermCreateReports))
	assert.False(t, out.Has(PermEditEmoteSelf))
}

func TestAdministratorSatisfiesEveryCheck(t *testing.T) {
	admin := NewPermissionSet(PermAdministrator)
	for _, f := range allFlags {
		assert.True(t, admin.Has(f), "administrator should satisfy %s", PermissionNames[f])
	}
	assert.True(t, admin.HasAll(allFlags...))

	// Administrator is an override in Has, not an implicit union: the other
	// bits stay unset in the stored value.
	assert.Equal(t, int64(PermAdministrator), admin.Raw())
}

func TestHasAllRequiresEveryFlag(t *testing.T) {
	s := NewPermissionSet(PermCreateEmote, PermEditEmoteSelf)
	assert.True(t, s.HasAll(PermCreateEmote, PermEditEmoteSelf))
	assert.False(t, s.HasAll(PermCreateEmote, PermBanUsers))
	assert.True(t, s.HasAll())
}

func TestRawRoundTrip(t *testing.T) {
	cases := []int64{
		0,
		DefaultPermissions.Raw(),
		NewPermissionSet(allFlags...).Raw(),
		-1, // all 64 bits, incl. bits no flag defines
		int64(1) << 62,
	}
	for _, raw := range cases {
		assert.Equal(t, raw, PermissionSetFromRaw(raw).Raw())
	}
}

func TestUnknownHighBitsSurviveButNeverMatch(t *testing.T) {
	const unknown = PermissionSet(1) << 40
	s := NewPermissionSet(PermCreateEmote).Union(unknown)

	assert.True(t, s.Has(PermCreateEmote))
	for _, f := range allFlags {
		if f == PermCreateEmote {
			continue
		}
		assert.False(t, s.Has(f))
	}
	assert.Equal(t, s.Raw(), PermissionSetFromRaw(s.Raw()).Raw())
}

func TestIntersectKeepsOnlySharedFlags(t *testing.T) {
	left := NewPermissionSet(PermCreateEmote, PermBanUsers)
	right := NewPermissionSet(PermCreateEmote, PermManageRoles)
	both := left.Intersect(right)

	assert.True(t, both.Has(PermCreateEmote))
	assert.False(t, both.Has(PermBanUsers))
	assert.False(t, both.Has(PermManageRoles))

	everyday := NewPermissionSet(PermCreateEmote, PermEditEmoteSelf)
	assert.True(t, everyday.Has(PermCreateEmote))
	assert.False(t, everyday.Has(PermBanUsers))
}

func TestModeratorScenario(t *testing.T) {
	// BAN_USERS | MANAGE_REPORTS grants exactly those two checks and no
	// administrator-only ones.
	mod := NewPermissionSet(PermBanUsers, PermManageReports)

	assert.True(t, mod.Has(PermBanUsers))
	assert.True(t, mod.Has(PermManageReports))
	assert.False(t, mod.Has(PermAdministrator))
	assert.False(t, mod.Has(PermManageRoles))
	assert.False(t, mod.Has(PermManageUsers))
}

func TestDefaultPermissions(t *testing.T) {
	assert.True(t, DefaultPermissions.Has(PermCreateEmote))
	assert.True(t, DefaultPermissions.Has(PermEditEmoteSelf))
	assert.True(t, DefaultPermissions.Has(PermCreateReports))
	assert.True(t, DefaultPermissions.Has(PermManageEditors))

	assert.False(t, DefaultPermissions.Has(PermEditEmoteAll))
	assert.False(t, DefaultPermissions.Has(PermBanUsers))
	assert.False(t, DefaultPermissions.Has(PermAdministrator))
}

func TestLegacyDefaultPermissionsIsEmpty(t *testing.T) {
	// The historical default combined four disjoint bits with AND, which
	// yields zero. The constant preserves that behavior for deployments
	// that opt into it.
	assert.Equal(t, int64(0), LegacyDefaultPermissions.Raw())
	for _, f := range allFlags {
		assert.False(t, LegacyDefaultPermissions.Has(f))
	}
}

func TestPermissionSetBSONRoundTrip(t *testing.T) {
	type doc struct {
		Perms PermissionSet `bson:"perms"`
	}

	cases := []PermissionSet{
		0,
		DefaultPermissions,
		NewPermissionSet(allFlags...),
		PermissionSetFromRaw(-1),
		PermissionSet(1) << 40,
	}
	for _, p := range cases {
		raw, err := bson.Marshal(doc{Perms: p})
		assert.NoError(t, err)

		var out doc
		assert.NoError(t, bson.Unmarshal(raw, &out))
		assert.Equal(t, p, out.Perms)
	}
}

func TestPermissionSetDecodeLegacyNumericTypes(t *testing.T) {
	// Documents written before the int64 codec may hold int32 or double.
	type in32 struct {
		Perms int32 `bson:"perms"`
	}
	type inF struct {
		Perms float64 `bson:"perms"`
	}
	type out struct {
		Perms PermissionSet `bson:"perms"`
	}

	raw, err := bson.Marshal(in32{Perms: int32(PermBanUsers)})
	assert.NoError(t, err)
	var o out
	assert.NoError(t, bson.Unmarshal(raw, &o))
	assert.Equal(t, PermBanUsers, o.Perms)

	raw, err = bson.Marshal(inF{Perms: float64(PermManageRoles)})
	assert.NoError(t, err)
	assert.NoError(t, bson.Unmarshal(raw, &o))
	assert.Equal(t, PermManageRoles, o.Perms)
}

func TestPermissionSetDecodeRejectsNonNumeric(t *testing.T) {
	var p PermissionSet
	err := p.UnmarshalBSONValue(bsontype.String, []byte{})
	assert.Error(t, err)
}
