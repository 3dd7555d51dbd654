package output

import (
	"context"

	"sportsnews/internal/domain/entities"
)

// AuditNotifier publishes an audit summary outside the terminal.
type AuditNotifier interface {
	NotifyAudit(ctx context.Context, report *entities.AuditReport) error
}
