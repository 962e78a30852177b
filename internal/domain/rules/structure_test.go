package rules_test

import (
	"testing"

	"github.com/abdidvp/repohealth/internal/domain"
	"github.com/abdidvp/repohealth/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckProjectStructure_SingleRootFile(t *testing.T) {
	findings := rules.CheckProjectStructure(input([]domain.TreeEntry{blob("index.js")}, nil))

	got := ids(findings)
	assert.Contains(t, got, "ps-no-src")
	assert.Contains(t, got, "ps-no-tests")
	assert.NotContains(t, got, "ps-deep-nesting")
	assert.NotContains(t, got, "ps-root-clutter")
}

func TestCheckProjectStructure_SrcWithTests(t *testing.T) {
	findings := rules.CheckProjectStructure(input([]domain.TreeEntry{
		blob("src/index.ts"),
		blob("src/__tests__/index.test.ts"),
	}, nil))

	got := ids(findings)
	assert.NotContains(t, got, "ps-no-src")
	assert.NotContains(t, got, "ps-no-tests")
}

func TestCheckProjectStructure_TestIndicators(t *testing.T) {
	paths := []string{
		"test/app.js",
		"packages/core/tests/app.js",
		"spec/app_spec.rb",
		"lib/app.spec.js",
		"lib/app.test.tsx",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			findings := rules.CheckProjectStructure(input([]domain.TreeEntry{blob(p)}, nil))
			assert.NotContains(t, ids(findings), "ps-no-tests")
		})
	}
}

func TestCheckProjectStructure_FileNamedTestIsNotATestDir(t *testing.T) {
	findings := rules.CheckProjectStructure(input([]domain.TreeEntry{blob("src/test")}, nil))
	assert.Contains(t, ids(findings), "ps-no-tests")
}

func TestCheckProjectStructure_DeepNesting(t *testing.T) {
	findings := rules.CheckProjectStructure(input([]domain.TreeEntry{
		blob("src/a/b/c/d/e/f.ts"),     // 7 segments: allowed
		blob("src/a/b/c/d/e/f/g.ts"),   // 8 segments
		blob("src/a/b/c/d/e/f/g/h.ts"), // 9 segments
	}, nil))

	f, ok := findByID(findings, "ps-deep-nesting")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityInfo, f.Severity)
	assert.Equal(t, "src/a/b/c/d/e/f/g/h.ts", f.FilePath)
	assert.Contains(t, f.Description, "2 paths")
}

func TestCheckProjectStructure_RootClutter(t *testing.T) {
	tree := numberedBlobs("file", ".txt", 15)
	assert.NotContains(t, ids(rules.CheckProjectStructure(input(tree, nil))), "ps-root-clutter")

	tree = append(tree, blob("one-more.txt"), dir("src"))
	f, ok := findByID(rules.CheckProjectStructure(input(tree, nil)), "ps-root-clutter")
	require.True(t, ok)
	assert.Contains(t, f.Description, "16 files")
}

func TestCheckProjectStructure_CategoryIsConsistent(t *testing.T) {
	for _, f := range rules.CheckProjectStructure(input(nil, nil)) {
		assert.Equal(t, domain.CategoryProjectStructure, f.Category)
	}
}
