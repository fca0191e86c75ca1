package service

import (
	"emotehub/internal/emotes/mocks"
	"emotehub/internal/emotes/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService(repo *mocks.MockRepository, roles *mocks.MockRoleProvider) *Service {
	return NewService(repo, repo, roles, model.DefaultPermissions)
}

// newLegacyService runs with the zero permission baseline, so only role
// grants matter.
func newLegacyService(repo *mocks.MockRepository, roles *mocks.MockRoleProvider) *Service {
	return NewService(repo, repo, roles, model.LegacyDefaultPermissions)
}

// seedActor registers a caller on the mock repo. With flags, the actor gets
// a role granting exactly those flags; without, only the service defaults
// apply.
func seedActor(repo *mocks.MockRepository, roles *mocks.MockRoleProvider, flags ...model.PermissionSet) *model.TwitchUser {
	actor := &model.TwitchUser{
		ID:       primitive.NewObjectID(),
		TwitchID: "100",
		Login:    "caller",
	}
	if len(flags) > 0 {
		roleID := primitive.NewObjectID()
		actor.RoleID = &roleID
		roles.On("GetRole", mock.Anything, roleID).Return(&model.Role{
			ID:      roleID,
			Name:    "granted",
			Allowed: model.NewPermissionSet(flags...),
		}, nil)
	}
	repo.On("GetUser", mock.Anything, actor.ID).Return(actor, nil)
	return actor
}
