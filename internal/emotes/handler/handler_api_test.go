package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emotehub/internal/emotes/auth"
	"emotehub/internal/emotes/handler"
	"emotehub/internal/emotes/mocks"
	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"
	"emotehub/internal/emotes/router"
	"emotehub/internal/emotes/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setupServer wires the real service, handler, router and auth middleware
// over the mocked repository, so requests exercise the full stack.
func setupServer(t *testing.T, repo *mocks.MockRepository, roles *mocks.MockRoleProvider) (*echo.Echo, *auth.Manager) {
	t.Helper()

	tokens, err := auth.NewManager(auth.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef"),
		Issuer:    "emotehub-test",
		AccessTTL: time.Hour,
	})
	assert.NoError(t, err)

	svc := service.NewService(repo, repo, roles, model.DefaultPermissions)
	h := handler.NewHandler(svc)
	authMW := handler.NewAuthMiddleware(tokens, repo)

	e := echo.New()
	router.RegisterRoutes(e, h, authMW)
	return e, tokens
}

// seedCaller registers an authenticated caller on the mock repo and returns
// the user together with a token the auth middleware accepts.
func seedCaller(t *testing.T, repo *mocks.MockRepository, tokens *auth.Manager) (*model.TwitchUser, string) {
	t.Helper()

	user := &model.TwitchUser{
		ID:       primitive.NewObjectID(),
		TwitchID: "100",
		Login:    "caller",
	}
	repo.On("GetUser", mock.Anything, user.ID).Return(user, nil)
	repo.On("GetActiveBan", mock.Anything, user.ID).Return(nil, nil)

	token, err := tokens.CreateAccess(user.ID.Hex(), user.TokenVersion)
	assert.NoError(t, err)
	return user, token
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, _ := setupServer(t, repo, roles)

	rec := doRequest(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingToken(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, _ := setupServer(t, repo, roles)

	rec := doRequest(e, http.MethodGet, "/api/v1/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, _ := setupServer(t, repo, roles)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRevokedTokenRejected(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)

	// Token minted at version 0, user bumped to 1 since.
	user := &model.TwitchUser{ID: primitive.NewObjectID(), Login: "revoked", TokenVersion: 1}
	repo.On("GetUser", mock.Anything, user.ID).Return(user, nil)

	token, err := tokens.CreateAccess(user.ID.Hex(), 0)
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/v1/users/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBannedUserRejected(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)

	user := &model.TwitchUser{ID: primitive.NewObjectID(), Login: "banned"}
	repo.On("GetUser", mock.Anything, user.ID).Return(user, nil)
	repo.On("GetActiveBan", mock.Anything, user.ID).Return(&model.Ban{
		UserID: user.ID,
		Active: true,
	}, nil)

	token, err := tokens.CreateAccess(user.ID.Hex(), 0)
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/v1/users/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMe(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	user, token := seedCaller(t, repo, tokens)

	rec := doRequest(e, http.MethodGet, "/api/v1/users/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out model.TwitchUser
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, "caller", out.Login)
}

func TestPostEmote(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	user, token := seedCaller(t, repo, tokens)

	repo.On("CreateEmote", mock.Anything, mock.AnythingOfType("*model.Emote")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Emote).ID = primitive.NewObjectID()
		}).Return(nil)
	repo.On("AddUserEmote", mock.Anything, user.ID, mock.Anything).Return(nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/emotes", token,
		`{"name":"peepoHappy","tags":["happy"],"mime":"image/webp"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out model.Emote
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "peepoHappy", out.Name)
	assert.Equal(t, user.ID, out.OwnerID)
}

func TestPostEmoteValidation(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	_, token := seedCaller(t, repo, tokens)

	rec := doRequest(e, http.MethodPost, "/api/v1/emotes", token, `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "CreateEmote", mock.Anything, mock.Anything)
}

func TestGetEmoteNotFound(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	_, token := seedCaller(t, repo, tokens)

	missing := primitive.NewObjectID()
	repo.On("GetEmote", mock.Anything, missing).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/emotes/"+missing.Hex(), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var out model.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "not_found", out.Error.Code)
}

func TestListEmotes(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	_, token := seedCaller(t, repo, tokens)

	repo.On("FindEmotes", mock.Anything, mock.AnythingOfType("model.ListEmotesReq")).
		Return([]*model.Emote{{Name: "one"}, {Name: "two"}}, int64(2), nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/emotes?page=1&size=10", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out model.EmotePage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(2), out.Total)
	assert.Len(t, out.Emotes, 2)
}

func TestPostBanForbidden(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	_, token := seedCaller(t, repo, tokens)

	body := `{"user_id":"` + primitive.NewObjectID().Hex() + `","reason":"spam"}`
	rec := doRequest(e, http.MethodPost, "/api/v1/bans", token, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var out model.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "forbidden", out.Error.Code)
}

func TestPostRoleConflict(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)

	// Caller holds MANAGE_ROLES through a role.
	user := &model.TwitchUser{ID: primitive.NewObjectID(), Login: "admin"}
	roleID := primitive.NewObjectID()
	user.RoleID = &roleID
	roles.On("GetRole", mock.Anything, roleID).Return(&model.Role{
		ID:      roleID,
		Allowed: model.NewPermissionSet(model.PermManageRoles),
	}, nil)
	repo.On("GetUser", mock.Anything, user.ID).Return(user, nil)
	repo.On("GetActiveBan", mock.Anything, user.ID).Return(nil, nil)

	token, err := tokens.CreateAccess(user.ID.Hex(), 0)
	assert.NoError(t, err)

	repo.On("CreateRole", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	rec := doRequest(e, http.MethodPost, "/api/v1/roles", token, `{"name":"moderator"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	repo := new(mocks.MockRepository)
	roles := new(mocks.MockRoleProvider)
	e, tokens := setupServer(t, repo, roles)
	_, token := seedCaller(t, repo, tokens)

	rec := doRequest(e, http.MethodGet, "/api/v1/users/me", token, "")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
