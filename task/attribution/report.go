package attribution

import (
	"encoding/csv"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"attribution/model/store"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var reportHeader = []string{"channel_name", "date", "cost", "ihc", "ihc_revenue", "cpo", "roas"}

// ExportChannelReport writes the aggregated channel report to a CSV file,
// with cpo and roas derived at read time.
func ExportChannelReport(path string) error {
	rows, errCode := store.GetStore().GetChannelReport()
	if errCode != http.StatusFound {
		return errors.New("failed to read channel report")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create report directory")
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create report file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(reportHeader); err != nil {
		return errors.Wrap(err, "failed to write report header")
	}
	for i := range rows {
		row := &rows[i]
		record := []string{
			row.ChannelName,
			row.Date,
			formatFloat(row.Cost),
			formatFloat(row.IHC),
			formatFloat(row.IHCRevenue),
			formatFloat(row.CPO()),
			formatFloat(row.ROAS()),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write report row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush report")
	}

	log.WithFields(log.Fields{"path": path, "rows": len(rows)}).Info("Channel report exported.")
	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
