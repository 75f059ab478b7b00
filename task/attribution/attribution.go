package attribution

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"attribution/model/store"
	U "attribution/util"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options carries the per-run parameters of the attribution pipeline.
// StartDate/EndDate bound the reported conversions; empty means all. Artifact
// paths are optional, an empty path skips that artifact.
type Options struct {
	StartDate string
	EndDate   string

	TransformedDataPath string
	APIResponsePath     string
	ChannelReportPath   string
}

// RunAttribution executes the pipeline end to end: journey transform, batch
// submission, response reconciliation, attribution load with verification,
// channel aggregation and report export. Each stage drains its input fully
// before the next starts; there is no pipelining.
func RunAttribution(client *Client, convTypeID string, opts Options) error {
	logCtx := log.WithField("run_id", U.GetUUID())

	convStart, convEnd := "", ""
	if opts.StartDate != "" || opts.EndDate != "" {
		start, end, err := U.ValidateDateRange(opts.StartDate, opts.EndDate)
		if err != nil {
			return errors.Wrap(err, "invalid date range")
		}
		convStart, convEnd = U.BufferedConversionRange(start, end)
	}

	sessions, errCode := store.GetStore().GetSessionSources()
	if errCode != http.StatusFound {
		return errors.New("session sources not available")
	}
	conversions, errCode := store.GetStore().GetConversions(convStart, convEnd)
	if errCode != http.StatusFound {
		return errors.New("conversions not available")
	}

	entries, err := BuildJourneyEntries(sessions, conversions)
	if err != nil {
		return err
	}
	if opts.TransformedDataPath != "" {
		if err := writeJSONArtifact(opts.TransformedDataPath, entries); err != nil {
			return err
		}
	}

	batches := CreateBatches(entries)
	logCtx.WithField("batches", len(batches)).Info("Split journey entries into batches.")

	responses, successful, total, err := client.Submit(batches, convTypeID)
	if err != nil {
		return err
	}
	logCtx.WithFields(log.Fields{
		"successful": successful,
		"total":      total,
	}).Info("Batch submission completed.")
	if opts.APIResponsePath != "" {
		if err := writeJSONArtifact(opts.APIResponsePath, responses); err != nil {
			return err
		}
	}

	records, err := Reconcile(responses)
	if err != nil {
		return err
	}

	if errCode := store.GetStore().UpsertAttributionRecords(records); errCode != http.StatusCreated {
		return errors.New("failed to load attribution records")
	}
	validCount, errCode := store.GetStore().GetValidAttributionCount()
	if errCode != http.StatusFound {
		return errors.New("failed to verify attribution records")
	}
	if validCount == 0 {
		return ErrVerificationFailed
	}
	logCtx.WithField("valid_records", validCount).Info("Attribution records verified.")

	reportRows, errCode := store.GetStore().AggregateChannelMetrics()
	if errCode == http.StatusNotFound {
		return ErrNoAggregationRows
	}
	if errCode != http.StatusCreated {
		return errors.New("channel aggregation failed")
	}
	logCtx.WithField("report_rows", reportRows).Info("Channel metrics aggregated.")

	if opts.ChannelReportPath != "" {
		if err := ExportChannelReport(opts.ChannelReportPath); err != nil {
			return err
		}
	}

	logCtx.Info("Attribution pipeline completed.")
	return nil
}

func writeJSONArtifact(path string, payload interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal artifact %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", path)
	}
	log.WithField("path", path).Info("Artifact written.")
	return nil
}
