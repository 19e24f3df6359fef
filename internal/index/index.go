package index

import "github.com/starford/reelmd/internal/models"

// ScriptIndex is the catalog surface used by services. *DB implements it.
type ScriptIndex interface {
	UpsertScript(s ScriptRow, chapters []models.Chapter, body string) error
	DeleteScript(path string) error
	GetChecksum(path string) (string, error)
	GetScript(path string) (*ScriptRow, error)
	ListScripts(limit, offset int, sort string) ([]ScriptRow, int, error)
	Chapters(path string) ([]models.Chapter, error)
	Search(query string, limit int) ([]SearchResult, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

var _ ScriptIndex = (*DB)(nil)
