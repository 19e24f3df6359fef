// Package storage gives access to the scripts directory.
package storage

import (
	"path/filepath"
	"strings"

	"github.com/starford/reelmd/internal/models"
)

// Provider is the interface for script file operations. Paths are relative
// to the scripts root.
type Provider interface {
	// List returns metadata for every script under dir.
	List(dir string) ([]models.ScriptMetadata, error)
	Read(path string) ([]byte, error)
	// Write replaces the file at path atomically.
	Write(path string, content []byte) error
	Delete(path string) error
	Move(oldPath, newPath string) error
}

// Script file extensions.
var scriptExts = []string{".md", ".reel"}

// IsScript reports whether name has a script extension.
func IsScript(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range scriptExts {
		if ext == e {
			return true
		}
	}
	return false
}
