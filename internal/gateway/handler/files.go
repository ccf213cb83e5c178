package handler

import (
	"encoding/json"
	"net/http"

	"sonarassist/internal/scan"
	"sonarassist/internal/uri"
)

// FilesHandler serves the recursive marker-file scan.
type FilesHandler struct{}

func NewFilesHandler() *FilesHandler {
	return &FilesHandler{}
}

type folderURIParams struct {
	FolderURI string `json:"folderUri"`
}

type listFilesInScopeResponse struct {
	FoundFiles []scan.FoundFile `json:"foundFiles"`
}

func (h *FilesHandler) HandleListFilesInScope(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var params folderURIParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	root, err := uri.ToPath(params.FolderURI)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found := scan.ListFilesInScope(root)
	if found == nil {
		found = []scan.FoundFile{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listFilesInScopeResponse{FoundFiles: found})
}
