package relational

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// Dataset table layout.
const (
	DatasetTable   = "dataset"
	MetadataColumn = "metadata"
	IDColumn       = "id"
	NameColumn     = "name"
)

// ErrInvalidPath is returned when a metadata path cannot be rendered safely.
var ErrInvalidPath = errors.New("invalid metadata path")

var pathElement = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Predicate is a boolean SQL fragment with `?` placeholders and its bound values.
type Predicate struct {
	SQL  string
	Args []any
}

// Ident quotes a single identifier.
func Ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// ValidatePath checks that every element of a metadata path is a plain
// field name.
func ValidatePath(path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, p := range path {
		if !pathElement.MatchString(p) {
			return fmt.Errorf("%w: element %q", ErrInvalidPath, p)
		}
	}
	return nil
}

// ExtractText returns the expression extracting the metadata value at path as text.
// The path must have passed ValidatePath.
func ExtractText(path []string) string {
	return Ident(MetadataColumn) + " #>> " + pq.QuoteLiteral("{"+strings.Join(path, ",")+"}")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters `\`, `%` and `_`.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Equals renders `expr = ?`.
func Equals(expr string, value any) Predicate {
	return Predicate{SQL: expr + " = ?", Args: []any{value}}
}

// Contains renders a case-sensitive substring test, `expr LIKE ?` with `%value%`.
func Contains(expr, value string) Predicate {
	return Predicate{SQL: expr + " LIKE ?", Args: []any{"%" + EscapeLike(value) + "%"}}
}

// OrNull wraps p so that rows where expr is NULL also satisfy it.
func OrNull(expr string, p Predicate) Predicate {
	return Predicate{SQL: "(" + expr + " IS NULL OR " + p.SQL + ")", Args: p.Args}
}
