package cache

import (
	"context"
	"testing"

	"emotehub/internal/emotes/mocks"
	"emotehub/internal/emotes/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Without a redis client the cache must be a transparent passthrough.

func TestGetRoleWithoutRedis(t *testing.T) {
	repo := new(mocks.MockRepository)
	c := NewRoleCache(repo, nil, 0)

	id := primitive.NewObjectID()
	repo.On("GetRole", mock.Anything, id).Return(&model.Role{ID: id, Name: "mod"}, nil)

	role, err := c.GetRole(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "mod", role.Name)
	repo.AssertExpectations(t)
}

func TestGetRoleMissWithoutRedis(t *testing.T) {
	repo := new(mocks.MockRepository)
	c := NewRoleCache(repo, nil, 0)

	id := primitive.NewObjectID()
	repo.On("GetRole", mock.Anything, id).Return(nil, nil)

	role, err := c.GetRole(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, role)
}

func TestInvalidateWithoutRedis(t *testing.T) {
	repo := new(mocks.MockRepository)
	c := NewRoleCache(repo, nil, 0)

	assert.NoError(t, c.Invalidate(context.Background(), primitive.NewObjectID()))
}

func TestNewRoleCacheDefaultTTL(t *testing.T) {
	c := NewRoleCache(new(mocks.MockRepository), nil, 0)
	assert.Equal(t, DefaultRoleTTL, c.ttl)
}

func TestRoleKey(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, "emotehub:role:"+id.Hex(), roleKey(id))
}
