package domain_test

import (
	"testing"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() (*domain.CategorySet, *domain.Category, *domain.Category, *domain.Category) {
	root := &domain.Category{ID: "expense", Title: "Expense", Type: domain.Expense, Emoji: "💸"}
	general := &domain.Category{ID: "joy", Title: "Joy", Type: domain.Expense, Emoji: "🎮", Parent: root}
	sub := &domain.Category{ID: "joy_dates", Title: "Dates", Type: domain.Expense, Parent: general}
	return domain.NewCategorySet([]*domain.Category{root, general, sub}), root, general, sub
}

func TestCategoryLevels(t *testing.T) {
	_, root, general, sub := testTree()

	assert.True(t, root.IsTypeCategory())
	assert.True(t, general.IsGeneralCategory())
	assert.True(t, sub.IsSubCategory())
	assert.False(t, general.IsTypeCategory())
	assert.False(t, sub.IsGeneralCategory())
}

func TestCategoryRootAndGeneral(t *testing.T) {
	_, root, general, sub := testTree()

	assert.Same(t, root, sub.Root())
	assert.Same(t, root, root.Root())
	assert.Same(t, general, sub.General())
	assert.Same(t, general, general.General())
	assert.Same(t, root, root.General())
}

func TestResolveEmoji_FallsBackUpTheTree(t *testing.T) {
	_, root, general, sub := testTree()

	assert.Equal(t, "🎮", sub.ResolveEmoji())
	assert.Equal(t, "🎮", general.ResolveEmoji())
	assert.Equal(t, "💸", root.ResolveEmoji())

	bare := &domain.Category{ID: "bare", Parent: &domain.Category{ID: "p", Parent: &domain.Category{ID: "g", Emoji: "🏠"}}}
	assert.Equal(t, "🏠", bare.ResolveEmoji())
}

func TestCategorySet_RootType(t *testing.T) {
	set, _, _, _ := testTree()

	rootType, ok := set.RootType("joy_dates")
	require.True(t, ok)
	assert.Equal(t, domain.Expense, rootType)

	_, ok = set.RootType("nope")
	assert.False(t, ok)
}

func TestCategorySet_ChildrenAndTopLevel(t *testing.T) {
	set, root, general, sub := testTree()

	top := set.TopLevel()
	require.Len(t, top, 1)
	assert.Same(t, root, top[0])

	children := set.Children(general.ID)
	require.Len(t, children, 1)
	assert.Same(t, sub, children[0])
}
