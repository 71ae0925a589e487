// Package sqlpatch builds partial UPDATE statements from change-sets.
package sqlpatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
)

// Columns is the set of columns a table accepts in a patch
type Columns map[string]struct{}

// NewColumns builds a column set from names
func NewColumns(names ...string) Columns {
	c := make(Columns, len(names))
	for _, n := range names {
		c[n] = struct{}{}
	}
	return c
}

// Statement is a ready to execute UPDATE
type Statement struct {
	Query string
	Args  []any
}

// Build renders UPDATE table SET col = $n, ..., updated_at = $n WHERE id = $n.
// Columns are emitted in sorted order so the same change-set always yields the
// same query text. convert maps domain values to driver values.
func Build(table string, allowed Columns, id string, changes changeset.ChangeSet, convert func(col string, v any) (any, error)) (Statement, error) {
	if changes.IsEmpty() {
		return Statement{}, errx.New("empty change set", errx.TypeInternal)
	}

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+2)

	for _, col := range changes.Keys() {
		if _, ok := allowed[col]; !ok {
			return Statement{}, errx.New("column is not patchable", errx.TypeValidation).
				WithDetail("table", table).
				WithDetail("column", col)
		}

		v := changes[col]
		if convert != nil {
			var err error
			if v, err = convert(col, v); err != nil {
				return Statement{}, fmt.Errorf("failed to convert %s.%s: %w", table, col, err)
			}
		}

		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	args = append(args, time.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args))

	return Statement{Query: query, Args: args}, nil
}
