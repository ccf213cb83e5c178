package scan

import (
	"os"
	"path/filepath"
)

// Marker configuration files whose presence hints that a folder belongs to a
// remote analysis project. Their content is read eagerly during a scan.
const (
	ScannerConfigFileName  = "sonar-project.properties"
	AutoScanConfigFileName = ".sonarcloud.properties"
)

// FoundFile describes one regular file discovered below a scanned folder.
// Content is non-nil only for the recognized marker configuration files.
type FoundFile struct {
	FileName string  `json:"fileName"`
	FilePath string  `json:"filePath"`
	Content  *string `json:"content"`
}

// ListFilesInScope walks the tree rooted at root depth-first and returns every
// regular file found. A subtree that cannot be read yields no entries; scan
// failures are swallowed where they occur, so callers cannot tell an empty
// folder from an unreadable one.
func ListFilesInScope(root string) []FoundFile {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var found []FoundFile
	for _, entry := range entries {
		fullPath := filepath.Join(root, entry.Name())
		switch {
		case entry.IsDir():
			found = append(found, ListFilesInScope(fullPath)...)
		case entry.Type().IsRegular():
			file := FoundFile{
				FileName: entry.Name(),
				FilePath: fullPath,
			}
			if isMarkerFile(entry.Name()) {
				if b, readErr := os.ReadFile(fullPath); readErr == nil {
					content := string(b)
					file.Content = &content
				}
			}
			found = append(found, file)
		}
	}
	return found
}

func isMarkerFile(name string) bool {
	return name == ScannerConfigFileName || name == AutoScanConfigFileName
}
