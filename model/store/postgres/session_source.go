package postgres

import (
	"net/http"

	C "attribution/config"
	"attribution/model/model"

	log "github.com/sirupsen/logrus"
)

// GetSessionSources returns every session source row. The pipeline drains the
// table in full before journey building starts.
func (pg *Postgres) GetSessionSources() ([]model.SessionSource, int) {
	db := C.GetServices().Db

	var sessions []model.SessionSource
	if err := db.Find(&sessions).Error; err != nil {
		log.WithError(err).Error("Failed to get session sources.")
		return nil, http.StatusInternalServerError
	}
	if len(sessions) == 0 {
		log.Error("No session sources found.")
		return nil, http.StatusNotFound
	}

	return sessions, http.StatusFound
}
