// Package mocks provides shared testify mocks for the repository
// interfaces, used by the service and handler test suites.
package mocks

import (
	"context"

	"emotehub/internal/emotes/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository implements repository.Repository and
// repository.AuditRepository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Emotes

func (m *MockRepository) CreateEmote(ctx context.Context, emote *model.Emote) error {
	args := m.Called(ctx, emote)
	return args.Error(0)
}

func (m *MockRepository) GetEmote(ctx context.Context, id primitive.ObjectID) (*model.Emote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Emote), args.Error(1)
}

func (m *MockRepository) UpdateEmote(ctx context.Context, emote *model.Emote) error {
	args := m.Called(ctx, emote)
	return args.Error(0)
}

func (m *MockRepository) FindEmotes(ctx context.Context, req model.ListEmotesReq) ([]*model.Emote, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Emote), args.Get(1).(int64), args.Error(2)
}

// Users

func (m *MockRepository) CreateUser(ctx context.Context, user *model.TwitchUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUser(ctx context.Context, id primitive.ObjectID) (*model.TwitchUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TwitchUser), args.Error(1)
}

func (m *MockRepository) GetUserByTwitchID(ctx context.Context, twitchID string) (*model.TwitchUser, error) {
	args := m.Called(ctx, twitchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TwitchUser), args.Error(1)
}

func (m *MockRepository) SetUserRole(ctx context.Context, userID primitive.ObjectID, roleID *primitive.ObjectID) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockRepository) AddEditor(ctx context.Context, userID, editorID primitive.ObjectID) error {
	args := m.Called(ctx, userID, editorID)
	return args.Error(0)
}

func (m *MockRepository) RemoveEditor(ctx context.Context, userID, editorID primitive.ObjectID) error {
	args := m.Called(ctx, userID, editorID)
	return args.Error(0)
}

func (m *MockRepository) AddUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error {
	args := m.Called(ctx, userID, emoteID)
	return args.Error(0)
}

func (m *MockRepository) RemoveUserEmote(ctx context.Context, userID, emoteID primitive.ObjectID) error {
	args := m.Called(ctx, userID, emoteID)
	return args.Error(0)
}

func (m *MockRepository) BumpTokenVersion(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Roles

func (m *MockRepository) CreateRole(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRepository) GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRepository) DeleteRole(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListRoles(ctx context.Context) ([]*model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockRepository) ClearRoleAssignments(ctx context.Context, roleID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

// Bans

func (m *MockRepository) CreateBan(ctx context.Context, ban *model.Ban) error {
	args := m.Called(ctx, ban)
	return args.Error(0)
}

func (m *MockRepository) GetActiveBan(ctx context.Context, userID primitive.ObjectID) (*model.Ban, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ban), args.Error(1)
}

func (m *MockRepository) DeactivateBans(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Reports

func (m *MockRepository) CreateReport(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockRepository) GetReport(ctx context.Context, id primitive.ObjectID) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockRepository) ClearReport(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) FindReports(ctx context.Context, req model.ListReportsReq) ([]*model.Report, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Report), args.Get(1).(int64), args.Error(2)
}

// Audit

func (m *MockRepository) CreateAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	// Audit writes may happen on any successful mutation; don't force every
	// test to declare them.
	if m.hasExpectation("CreateAuditEntry") {
		args := m.Called(ctx, entry)
		return args.Error(0)
	}
	return nil
}

func (m *MockRepository) FindAuditEntries(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditEntry, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.AuditEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) EnsureAuditIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) hasExpectation(method string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}

// MockRoleProvider implements service.RoleProvider.
type MockRoleProvider struct {
	mock.Mock
}

func (m *MockRoleProvider) GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleProvider) Invalidate(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
