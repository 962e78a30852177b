package rules

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/abdidvp/repohealth/internal/domain"
)

const manifestFile = "package.json"

// packageManifest is the subset of package.json the rules look at.
type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

func parseManifest(content string) (*packageManifest, error) {
	var m packageManifest
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

var (
	jsExtensions = map[string]bool{".js": true, ".jsx": true, ".mjs": true, ".cjs": true}
	tsExtensions = map[string]bool{".ts": true, ".tsx": true, ".mts": true, ".cts": true}
)

func isJSFile(p string) bool { return jsExtensions[path.Ext(p)] }

func isTSFile(p string) bool { return tsExtensions[path.Ext(p)] }

// isSourceFile reports whether p is a JS- or TS-family source file that is
// not a config file, a declaration file or hidden.
func isSourceFile(p string) bool {
	return isCodeFile(p) && !isHidden(p)
}

// isCodeFile reports whether p is a JS- or TS-family file that is neither a
// config nor a declaration file, wherever it lives.
func isCodeFile(p string) bool {
	if !isJSFile(p) && !isTSFile(p) {
		return false
	}
	return !isConfigFile(p) && !isDeclarationFile(p)
}

func isConfigFile(p string) bool {
	return strings.Contains(path.Base(p), ".config.")
}

func isDeclarationFile(p string) bool {
	return strings.HasSuffix(p, ".d.ts") || strings.HasSuffix(p, ".d.mts") || strings.HasSuffix(p, ".d.cts")
}

// isHidden reports whether any segment of p starts with a dot.
func isHidden(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

var testDirSegments = map[string]bool{"test": true, "tests": true, "__tests__": true, "spec": true}

// isTestPath reports whether p lives in a test directory or is named like a test file.
func isTestPath(p string) bool {
	segments := strings.Split(p, "/")
	for _, seg := range segments[:len(segments)-1] {
		if testDirSegments[seg] {
			return true
		}
	}
	base := segments[len(segments)-1]
	return strings.Contains(base, ".test.") || strings.Contains(base, ".spec.")
}

// rootBlobNames returns the lower-cased names of files at the repository root.
func rootBlobNames(in *domain.AnalysisInput) map[string]string {
	names := make(map[string]string)
	for _, e := range in.Tree {
		if e.IsBlob() && !strings.Contains(e.Path, "/") {
			names[strings.ToLower(e.Path)] = e.Path
		}
	}
	return names
}

// findRootFile returns the first root file whose name matches one of the
// candidates, ignoring case.
func findRootFile(in *domain.AnalysisInput, candidates ...string) (string, bool) {
	names := rootBlobNames(in)
	for _, c := range candidates {
		if p, ok := names[strings.ToLower(c)]; ok {
			return p, true
		}
	}
	return "", false
}

// hasAnyPath reports whether the tree contains any of the exact paths.
func hasAnyPath(in *domain.AnalysisInput, paths ...string) bool {
	for _, e := range in.Tree {
		for _, p := range paths {
			if e.Path == p {
				return true
			}
		}
	}
	return false
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
