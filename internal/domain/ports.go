package domain

import "context"

// SourceProvider reads repository data from a hosted source-control API.
type SourceProvider interface {
	FetchRepoInfo(ctx context.Context, owner, repo string) (RepoInfo, error)
	FetchRepoTree(ctx context.Context, owner, repo, branch string) (Tree, error)
	FetchFileContent(ctx context.Context, owner, repo, path string) (string, error)
}

// ConfigLoader loads tool configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// RemoteResolver finds the hosted repository URL of a local clone.
type RemoteResolver interface {
	OriginURL(dir string) (string, error)
}

// ResultCache memoises analysis results per repository.
type ResultCache interface {
	Get(ref RepoRef) (*AnalysisResult, bool)
	Add(ref RepoRef, result *AnalysisResult)
	Invalidate(ref RepoRef)
}
