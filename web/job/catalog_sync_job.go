// Package job contains scheduled background jobs.
package job

import (
	"context"

	"dragondex/logger"
	"dragondex/web/service"
)

// CatalogSyncJob re-runs the catalog import on a schedule. The import
// upserts by upstream id, so a re-sync refreshes existing rows and picks up
// anything a previously aborted import missed.
type CatalogSyncJob struct {
	characterService service.CharacterService
}

func NewCatalogSyncJob() *CatalogSyncJob {
	return new(CatalogSyncJob)
}

func (j *CatalogSyncJob) Run() {
	if err := j.characterService.ImportCatalog(context.Background()); err != nil {
		logger.Warning("catalog sync failed:", err)
		return
	}
	logger.Debug("catalog sync finished")
}
