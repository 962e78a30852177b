package rules_test

import (
	"testing"

	"github.com/abdidvp/repohealth/internal/domain"
	"github.com/abdidvp/repohealth/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCodePatterns_MixedLanguages(t *testing.T) {
	tree := append(numberedBlobs("src/js", ".js", 5), numberedBlobs("src/ts", ".ts", 5)...)

	f, ok := findByID(rules.CheckCodePatterns(input(tree, nil)), "cp-mixed-lang")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityWarning, f.Severity)
	assert.Contains(t, f.Description, "5 JavaScript")
	assert.Contains(t, f.Description, "5 TypeScript")
}

func TestCheckCodePatterns_SmallMinorityIsNotMixed(t *testing.T) {
	// 1 of 20 files is TypeScript: a 5% minority.
	tree := append(numberedBlobs("src/js", ".js", 19), blob("src/only.ts"))
	assert.NotContains(t, ids(rules.CheckCodePatterns(input(tree, nil))), "cp-mixed-lang")

	// 1 of 20 files is JavaScript: TypeScript share is 95%.
	tree = append(numberedBlobs("src/ts", ".ts", 19), blob("src/only.js"))
	assert.NotContains(t, ids(rules.CheckCodePatterns(input(tree, nil))), "cp-mixed-lang")
}

func TestCheckCodePatterns_ConfigAndDotfilesIgnored(t *testing.T) {
	tree := append(numberedBlobs("src/ts", ".ts", 4),
		blob("jest.config.js"),
		blob("vite.config.js"),
		blob(".eslintrc.js"),
		blob(".storybook/main.js"),
		blob("src/types.d.ts"),
	)
	assert.Empty(t, rules.CheckCodePatterns(input(tree, nil)))
}

func TestCheckCodePatterns_LargeFiles(t *testing.T) {
	tree := []domain.TreeEntry{
		sizedBlob("src/small.ts", 1_000),
		sizedBlob("src/exact.ts", 15_000),
		sizedBlob("src/big.ts", 15_001),
		sizedBlob("src/huge.ts", 90_000),
		sizedBlob("assets/logo.png", 500_000),
	}

	f, ok := findByID(rules.CheckCodePatterns(input(tree, nil)), "cp-large-files")
	require.True(t, ok)
	assert.Equal(t, "src/big.ts", f.FilePath)
	assert.Contains(t, f.Description, "2 source files")
}

func TestCheckCodePatterns_NamingInconsistency(t *testing.T) {
	tree := []domain.TreeEntry{
		blob("src/components/user-card.tsx"),
		blob("src/components/userProfile.tsx"),
		blob("src/components/index.ts"),
		// only two files: below the threshold
		blob("src/utils/date-format.ts"),
		blob("src/utils/stringHelpers.ts"),
		// consistent directory
		blob("src/hooks/use-auth.ts"),
		blob("src/hooks/use-theme.ts"),
		blob("src/hooks/use-store.ts"),
	}

	f, ok := findByID(rules.CheckCodePatterns(input(tree, nil)), "cp-naming-inconsistent")
	require.True(t, ok)
	assert.Contains(t, f.Description, "1 directory")
	assert.Empty(t, f.FilePath)
}

func TestCheckCodePatterns_PascalCaseIsNotCamelCase(t *testing.T) {
	tree := []domain.TreeEntry{
		blob("src/components/user-card.tsx"),
		blob("src/components/UserProfile.tsx"),
		blob("src/components/Button.tsx"),
	}
	assert.NotContains(t, ids(rules.CheckCodePatterns(input(tree, nil))), "cp-naming-inconsistent")
}
