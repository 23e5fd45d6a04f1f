package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/permission"
	"github.com/bilumvv/bilum/internal/session"
	sessionrepo "github.com/bilumvv/bilum/internal/session/repositoryimpl"
	"github.com/bilumvv/bilum/internal/user"
	userrepo "github.com/bilumvv/bilum/internal/user/repositoryimpl"
	usergrouprepo "github.com/bilumvv/bilum/internal/usergroup/repositoryimpl"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

func newTestServer(t *testing.T) (chi.Router, *session.Holder) {
	t.Helper()
	store := storage.NewMemoryStorage()
	roles, err := permission.LoadRoleTable()
	require.NoError(t, err)
	resolver := permission.NewResolver(roles, usergrouprepo.NewJSONRepository(store))
	holder := session.NewHolder(sessionrepo.NewJSONRepository(store), resolver)

	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	user.NewServer(userrepo.NewJSONRepository(store), holder).Routes(r)
	return r, holder
}

func TestSavePromotingActiveUserUpdatesSession(t *testing.T) {
	r, holder := newTestServer(t)
	ctx := context.Background()

	logged, err := holder.Login(ctx, user.User{ID: "u1", Name: "Ana", Role: permission.RoleGuest})
	require.NoError(t, err)
	require.Empty(t, logged.EffectivePermissions)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"id":"u1","name":"Ana","email":"ana@example.com","role":"admin","group_ids":["g-admin"]}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	current, err := holder.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, permission.RoleAdmin, current.Role)
	assert.Equal(t, []string{"g-admin"}, current.GroupIDs)
	assert.Equal(t, []permission.Permission{permission.Wildcard}, current.EffectivePermissions)

	ok, err := holder.HasPermission(ctx, permission.SystemManage)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveOtherUserLeavesSessionAlone(t *testing.T) {
	r, holder := newTestServer(t)
	ctx := context.Background()

	_, err := holder.Login(ctx, user.User{ID: "u1", Name: "Ana", Role: permission.RoleGuest})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"id":"u2","name":"Ben","email":"ben@example.com","role":"admin"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	current, err := holder.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, permission.RoleGuest, current.Role)
	assert.Empty(t, current.EffectivePermissions)
}

func TestSaveWithoutActiveSession(t *testing.T) {
	r, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
