package queries

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a free-text term into an ILIKE pattern that matches the
// term literally anywhere in the column.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
