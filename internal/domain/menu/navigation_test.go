package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

func TestBuildNavigation_Succeeds(t *testing.T) {
	nav, err := BuildNavigation(discardLogger())
	require.NoError(t, err)
	require.NotNil(t, nav)
	assert.NotEmpty(t, nav.Primary())
	assert.NotEmpty(t, nav.Menu())
}

func TestBuildNavigation_ComposedPathsUniqueAndNoEmptyGroups(t *testing.T) {
	nav, err := BuildNavigation(discardLogger())
	require.NoError(t, err)

	seen := map[string]int{}
	var walk func(nodes []*model.MenuNode)
	walk = func(nodes []*model.MenuNode) {
		for _, n := range nodes {
			if n.Path != "" {
				seen[n.Path]++
			}
			if n.Path == "" {
				assert.NotEmpty(t, n.Children, "pathless node %s must have children", n.Key)
			}
			walk(n.Children)
		}
	}
	walk(nav.Menu())

	for path, count := range seen {
		assert.Equal(t, 1, count, "path %s appears %d times", path, count)
	}
}

func TestBuildNavigation_ComposedNodesResolveToPrimary(t *testing.T) {
	nav, err := BuildNavigation(discardLogger())
	require.NoError(t, err)

	groupKeys := map[string]struct{}{}
	for _, spec := range DefaultGroupSpecs() {
		if spec.Key != "" {
			groupKeys[spec.Key] = struct{}{}
		}
	}

	var walk func(nodes []*model.MenuNode)
	walk = func(nodes []*model.MenuNode) {
		for _, n := range nodes {
			if _, isGroup := groupKeys[n.Key]; !isGroup {
				assert.NotNil(t, model.FindByKey(nav.Primary(), n.Key),
					"composed node %s must exist in primary", n.Key)
			}
			walk(n.Children)
		}
	}
	walk(nav.Menu())
}

func TestBuildNavigation_PrimaryPermissionsAreCataloged(t *testing.T) {
	var walk func(nodes []*model.MenuNode)
	walk = func(nodes []*model.MenuNode) {
		for _, n := range nodes {
			for _, k := range n.Permissions {
				assert.True(t, catalog.Contains(k),
					"node %s references unregistered key %s", n.Key, k)
			}
			walk(n.Children)
		}
	}
	walk(PrimaryForest())
}

func TestValidateTreeKeys_RejectsUnregisteredKey(t *testing.T) {
	forest := []*model.MenuNode{
		{
			Key: "bad", LabelKey: "menu.bad",
			Permissions: []catalog.Key{catalog.Key("ghost:page:view")},
			Path:        "/bad",
		},
	}

	err := validateTreeKeys(forest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost:page:view")
}

func TestPrimaryForest_NodeKeysUnique(t *testing.T) {
	seen := map[string]struct{}{}
	var walk func(nodes []*model.MenuNode)
	walk = func(nodes []*model.MenuNode) {
		for _, n := range nodes {
			_, dup := seen[n.Key]
			assert.False(t, dup, "duplicate node key %s", n.Key)
			seen[n.Key] = struct{}{}
			walk(n.Children)
		}
	}
	walk(PrimaryForest())
}

func TestDefaultGroupSpecs_SourceKeysExistInPrimary(t *testing.T) {
	primary := PrimaryForest()
	for _, spec := range DefaultGroupSpecs() {
		for _, key := range spec.SourceKeys {
			assert.NotNil(t, model.FindByKey(primary, key),
				"group %s references missing primary node %s", spec.Key, key)
		}
	}
}
