package output

import (
	"context"

	"sportsnews/internal/domain/entities"
)

type SchemaInspector interface {
	Columns(ctx context.Context, schema string, tables []string) ([]entities.ColumnInfo, error)
}
