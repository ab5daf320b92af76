package repositories

import (
	"strings"

	"github.com/courseos/backend/internal/models"
)

// ErrNotFound is wrapped by every repository error caused by a missing row
var ErrNotFound = models.ErrNotFound

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern matching "search" as a substring
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}
