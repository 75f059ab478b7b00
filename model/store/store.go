package store

import (
	"attribution/model/model"
	storePostgres "attribution/model/store/postgres"
)

// Store is the persistence surface used by the attribution pipeline. Methods
// return an http status code alongside results, following the convention of
// the rest of the data layer.
type Store interface {
	GetSessionSources() ([]model.SessionSource, int)
	GetConversions(startDate, endDate string) ([]model.Conversion, int)
	UpsertAttributionRecords(records []model.AttributionRecord) int
	GetValidAttributionCount() (int64, int)
	AggregateChannelMetrics() (int64, int)
	GetChannelReport() ([]model.ChannelReporting, int)
}

// GetStore - Should decide on which store implementation to use by
// configuration and return it. Postgres is the only implementation today.
func GetStore() Store {
	return &storePostgres.Postgres{}
}
