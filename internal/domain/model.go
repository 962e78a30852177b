package domain

import "time"

// RepoInfo is a snapshot of repository metadata taken at analysis time.
type RepoInfo struct {
	Owner         string    `json:"owner"`
	Name          string    `json:"repo"`
	DefaultBranch string    `json:"default_branch"`
	Description   string    `json:"description,omitempty"`
	Language      string    `json:"language,omitempty"`
	SizeKB        int       `json:"size"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Topics        []string  `json:"topics,omitempty"`
}

// EntryType distinguishes files from directories in a repository tree.
type EntryType string

const (
	EntryBlob EntryType = "blob"
	EntryTree EntryType = "tree"
)

// TreeEntry is one path in a repository's recursive file tree.
// Size is only set for blobs, and only when the provider reports it.
type TreeEntry struct {
	Path string    `json:"path"`
	Type EntryType `json:"type"`
	Size *int      `json:"size,omitempty"`
}

func (e TreeEntry) IsBlob() bool { return e.Type == EntryBlob }

// Tree is the result of a recursive tree fetch. Truncated is set when the
// provider could not return every entry.
type Tree struct {
	Entries   []TreeEntry
	Truncated bool
}

// AnalysisInput is the shared, read-only input handed to every rule module.
type AnalysisInput struct {
	RepoInfo     RepoInfo
	Tree         []TreeEntry
	FileContents map[string]string
}

// Blobs returns the file entries of the tree in provider order.
func (in *AnalysisInput) Blobs() []TreeEntry {
	var blobs []TreeEntry
	for _, e := range in.Tree {
		if e.IsBlob() {
			blobs = append(blobs, e)
		}
	}
	return blobs
}

// HasPath reports whether the tree contains an entry with exactly this path.
func (in *AnalysisInput) HasPath(path string) bool {
	for _, e := range in.Tree {
		if e.Path == path {
			return true
		}
	}
	return false
}

// Content returns the fetched content of a key file.
func (in *AnalysisInput) Content(path string) (string, bool) {
	c, ok := in.FileContents[path]
	return c, ok
}

// Finding is one issue reported by a rule module.
type Finding struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FilePath    string   `json:"file_path,omitempty"`
	Suggestion  string   `json:"suggestion"`
}

// AnalysisSummary is derived from the findings of a run, never authored.
type AnalysisSummary struct {
	TotalFindings int              `json:"total_findings"`
	ByCategory    map[Category]int `json:"by_category"`
	BySeverity    map[Severity]int `json:"by_severity"`
	HealthScore   int              `json:"health_score"`
}

// AnalysisResult is the sole output of one analysis run.
type AnalysisResult struct {
	Repo          RepoInfo        `json:"repo"`
	TreeTruncated bool            `json:"tree_truncated,omitempty"`
	Findings      []Finding       `json:"findings"`
	Summary       AnalysisSummary `json:"summary"`
}

// Grade returns the letter grade for the health score.
func (r AnalysisResult) Grade() string { return GradeFor(r.Summary.HealthScore) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
