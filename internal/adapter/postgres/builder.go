package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder is a squirrel statement builder using PostgreSQL $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so user input matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains wraps s for a substring LIKE/ILIKE match.
func Contains(s string) string {
	return "%" + EscapeLike(s) + "%"
}
