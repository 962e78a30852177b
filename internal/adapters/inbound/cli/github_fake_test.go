package cli_test

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newFakeGitHub serves a small TypeScript repository, acme/widgets, that
// triggers a known set of findings. Any other repository is a 404.
func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	pkg := base64.StdEncoding.EncodeToString([]byte(`{
  "name": "widgets",
  "scripts": {"build": "tsc"},
  "dependencies": {"react": "^18.0.0"},
  "devDependencies": {"typescript": "^5.0.0", "vitest": "^1.0.0"}
}`))

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"name":"widgets","owner":{"login":"acme"},"default_branch":"main","language":"TypeScript","stargazers_count":5}`)
	})
	mux.HandleFunc("/repos/acme/widgets/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"sha":"abc","truncated":false,"tree":[
			{"path":"package.json","type":"blob","size":200},
			{"path":"package-lock.json","type":"blob","size":9000},
			{"path":"README.md","type":"blob","size":100},
			{"path":"LICENSE","type":"blob","size":1000},
			{"path":".gitignore","type":"blob","size":20},
			{"path":".env","type":"blob","size":30},
			{"path":"src","type":"tree"},
			{"path":"src/index.ts","type":"blob","size":300},
			{"path":"tests","type":"tree"},
			{"path":"tests/index.test.ts","type":"blob","size":300}
		]}`)
	})
	mux.HandleFunc("/repos/acme/widgets/contents/package.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"type":"file","encoding":"base64","content":"%s"}`, pkg))
	})
	mux.HandleFunc("/repos/acme/widgets/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"type":"file","encoding":"","content":"# widgets"}`)
	})
	mux.HandleFunc("/repos/acme/widgets/contents/.gitignore", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Not Found"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}
