package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
)

var _ output.SchemaInspector = (*SchemaInspector)(nil)

// SchemaInspector lists table columns from information_schema.
type SchemaInspector struct {
	db Querier
}

func NewSchemaInspector(db Querier) *SchemaInspector {
	return &SchemaInspector{db: db}
}

type columnRow struct {
	Table    string `db:"table_name"`
	Column   string `db:"column_name"`
	DataType string `db:"data_type"`
	Nullable string `db:"is_nullable"`
	Default  string `db:"column_default"`
}

// Columns returns the columns of tables in schema, or of every table when
// tables is empty.
func (s *SchemaInspector) Columns(ctx context.Context, schema string, tables []string) ([]entities.ColumnInfo, error) {
	if tables == nil {
		tables = []string{}
	}
	rows, err := s.db.Query(ctx, `SELECT table_name, column_name, data_type, is_nullable,
			coalesce(column_default, '') AS column_default
		FROM information_schema.columns
		WHERE table_schema = $1
		  AND (cardinality($2::text[]) = 0 OR table_name = ANY($2::text[]))
		ORDER BY table_name, ordinal_position`, schema, tables)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[columnRow])
	if err != nil {
		return nil, fmt.Errorf("scan columns: %w", err)
	}
	out := make([]entities.ColumnInfo, len(recs))
	for i, r := range recs {
		out[i] = entities.ColumnInfo{
			Table:    r.Table,
			Column:   r.Column,
			DataType: r.DataType,
			Nullable: r.Nullable == "YES",
			Default:  r.Default,
		}
	}
	return out, nil
}
