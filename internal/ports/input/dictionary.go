package input

import "sportsnews/internal/domain/entities"

type DictionaryUseCase interface {
	Audit(reference string) (*entities.AuditReport, error)
	Backfill(defaults []entities.Entry, dryRun bool) ([]entities.BackfillResult, error)
}
