package postgres

import (
	"net/http"

	C "attribution/config"
	"attribution/model/model"

	log "github.com/sirupsen/logrus"
)

// Re-submitting a key overwrites the stored value: across runs the table
// converges to the latest submission. This is deliberately a different rule
// than reconciliation, which keeps the first occurrence within a single run.
const upsertAttributionStmt = "INSERT INTO attribution_customer_journey (conv_id, session_id, ihc)" +
	" VALUES (?, ?, ?) ON CONFLICT (conv_id, session_id) DO UPDATE SET ihc = excluded.ihc"

// UpsertAttributionRecords writes the reconciled record set in one
// transaction, so a failed load leaves no partial state behind.
func (pg *Postgres) UpsertAttributionRecords(records []model.AttributionRecord) int {
	db := C.GetServices().Db
	logCtx := log.WithFields(log.Fields{"records": len(records)})

	tx := db.Begin()
	if tx.Error != nil {
		logCtx.WithError(tx.Error).Error("Failed to begin attribution upsert transaction.")
		return http.StatusInternalServerError
	}

	for _, record := range records {
		if err := tx.Exec(upsertAttributionStmt, record.ConvID, record.SessionID, record.IHC).Error; err != nil {
			tx.Rollback()
			logCtx.WithError(err).WithFields(log.Fields{
				"conv_id":    record.ConvID,
				"session_id": record.SessionID,
			}).Error("Failed to upsert attribution record.")
			return http.StatusInternalServerError
		}
	}

	if err := tx.Commit().Error; err != nil {
		logCtx.WithError(err).Error("Failed to commit attribution upsert.")
		return http.StatusInternalServerError
	}

	logCtx.Info("Loaded attribution records.")
	return http.StatusCreated
}

// GetValidAttributionCount counts stored records with a positive attribution
// weight. Zero is a legitimate answer, not an error; callers decide whether to
// abort on it.
func (pg *Postgres) GetValidAttributionCount() (int64, int) {
	db := C.GetServices().Db

	var count int64
	if err := db.Model(&model.AttributionRecord{}).Where("ihc > 0").Count(&count).Error; err != nil {
		log.WithError(err).Error("Failed to count valid attribution records.")
		return 0, http.StatusInternalServerError
	}

	return count, http.StatusFound
}
