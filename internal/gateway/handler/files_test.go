package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sonarassist/internal/scan"
	"sonarassist/internal/uri"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleListFilesInScope(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sonar-project.properties"), []byte("X"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", ".sonarcloud.properties"), []byte("Y"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("hi"), 0o644))

	h := NewFilesHandler()
	body, err := json.Marshal(map[string]string{"folderUri": uri.FromPath(root)})
	require.NoError(t, err)

	rec := postJSON(t, h.HandleListFilesInScope, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		FoundFiles []scan.FoundFile `json:"foundFiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.FoundFiles, 3)

	byName := map[string]scan.FoundFile{}
	for _, f := range resp.FoundFiles {
		byName[f.FileName] = f
	}
	require.NotNil(t, byName["sonar-project.properties"].Content)
	require.Equal(t, "X", *byName["sonar-project.properties"].Content)
	require.NotNil(t, byName[".sonarcloud.properties"].Content)
	require.Equal(t, "Y", *byName[".sonarcloud.properties"].Content)
	require.Nil(t, byName["readme.md"].Content)

	// Null content must be serialized as JSON null, not omitted.
	require.Contains(t, rec.Body.String(), `"content":null`)
}

func TestHandleListFilesInScopeUnreadableFolder(t *testing.T) {
	h := NewFilesHandler()
	body := `{"folderUri": "file:///definitely/not/here"}`
	rec := postJSON(t, h.HandleListFilesInScope, body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"foundFiles": []}`, rec.Body.String())
}

func TestHandleListFilesInScopeRejectsBadURI(t *testing.T) {
	h := NewFilesHandler()
	rec := postJSON(t, h.HandleListFilesInScope, `{"folderUri": "https://example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListFilesInScopeRejectsGet(t *testing.T) {
	h := NewFilesHandler()
	req := httptest.NewRequest(http.MethodGet, "/", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	h.HandleListFilesInScope(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
