package postgres

import (
	"net/http"

	C "attribution/config"
	"attribution/model/model"

	log "github.com/sirupsen/logrus"
)

// GetConversions returns conversions, optionally limited to an inclusive
// conv_date range. Both bounds empty means no filtering; callers are expected
// to widen the bounds by the attribution lookback themselves.
func (pg *Postgres) GetConversions(startDate, endDate string) ([]model.Conversion, int) {
	db := C.GetServices().Db
	logCtx := log.WithFields(log.Fields{"start_date": startDate, "end_date": endDate})

	if startDate != "" && endDate != "" {
		db = db.Where("conv_date BETWEEN ? AND ?", startDate, endDate)
	}

	var conversions []model.Conversion
	if err := db.Find(&conversions).Error; err != nil {
		logCtx.WithError(err).Error("Failed to get conversions.")
		return nil, http.StatusInternalServerError
	}
	if len(conversions) == 0 {
		logCtx.Error("No conversions found for range.")
		return nil, http.StatusNotFound
	}

	return conversions, http.StatusFound
}
