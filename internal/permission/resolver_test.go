package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGroups map[string][]Permission

func (g staticGroups) ListGrants(_ context.Context) (map[string][]Permission, error) {
	return g, nil
}

func mustRoleTable(t *testing.T) RoleTable {
	t.Helper()
	table, err := LoadRoleTable()
	require.NoError(t, err)
	return table
}

func TestRoleTableContents(t *testing.T) {
	table := mustRoleTable(t)

	assert.ElementsMatch(t, []Permission{TranslationCreate, TranslationEdit}, table.Base(RoleTranslator))
	assert.Empty(t, table.Base(RoleGuest))
	assert.Contains(t, table.Base(RoleAdmin), SystemManage)
	assert.Contains(t, table.Base(RoleReviewer), DictionaryManage)
	assert.Empty(t, table.Base(Role("banana")))
}

func TestResolveGuestWithoutGroups(t *testing.T) {
	r := NewResolver(mustRoleTable(t), staticGroups{})

	perms, err := r.Resolve(context.Background(), RoleGuest, nil)
	require.NoError(t, err)
	assert.Empty(t, perms)

	assert.False(t, Has(perms, TranslationCreate))
	assert.False(t, Has(perms, Wildcard))
}

func TestResolveWildcardCollapses(t *testing.T) {
	groups := staticGroups{
		"g-admin": {Wildcard},
		"g-trans": {TranslationCreate},
	}
	r := NewResolver(mustRoleTable(t), groups)

	perms, err := r.Resolve(context.Background(), RoleTranslator, []string{"g-trans", "g-admin"})
	require.NoError(t, err)
	assert.Equal(t, []Permission{Wildcard}, perms)

	assert.True(t, Has(perms, TranslationCreate))
	assert.True(t, Has(perms, Permission("never.seen.before")))
}

func TestResolveUnionsRoleAndGroups(t *testing.T) {
	groups := staticGroups{
		"g-review": {TranslationReview, TranslationApprove},
	}
	r := NewResolver(mustRoleTable(t), groups)

	perms, err := r.Resolve(context.Background(), RoleTranslator, []string{"g-review"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []Permission{
		TranslationCreate,
		TranslationEdit,
		TranslationReview,
		TranslationApprove,
	}, perms)
}

func TestResolveIsOrderIndependent(t *testing.T) {
	groups := staticGroups{
		"a": {TranslationReview, TranslationCreate},
		"b": {TranslationApprove, TranslationCreate},
	}
	r := NewResolver(mustRoleTable(t), groups)
	ctx := context.Background()

	first, err := r.Resolve(ctx, RoleGuest, []string{"a", "b"})
	require.NoError(t, err)
	second, err := r.Resolve(ctx, RoleGuest, []string{"b", "a"})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// No duplicates despite the overlap between the two groups.
	seen := map[Permission]int{}
	for _, p := range first {
		seen[p]++
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "permission %s appears %d times", p, n)
	}
}

func TestResolveSkipsDeletedGroups(t *testing.T) {
	groups := staticGroups{
		"g-review": {TranslationReview},
	}
	r := NewResolver(mustRoleTable(t), groups)

	perms, err := r.Resolve(context.Background(), RoleGuest, []string{"g-review", "g-gone"})
	require.NoError(t, err)
	assert.Equal(t, []Permission{TranslationReview}, perms)
}

func TestHasMatchesExactly(t *testing.T) {
	set := []Permission{TranslationCreate}

	assert.True(t, Has(set, TranslationCreate))
	assert.False(t, Has(set, TranslationEdit))
	// No hierarchy: translation.create does not imply translation.*.
	assert.False(t, Has(set, Permission("translation.*")))
	assert.False(t, Has(nil, TranslationCreate))
}
