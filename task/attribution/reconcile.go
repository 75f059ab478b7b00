package attribution

import (
	"attribution/model/model"
	U "attribution/util"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const invalidStructureSampleLimit = 3

type recordKey struct {
	convID    string
	sessionID string
}

// Reconcile flattens the raw response payloads into a validated, deduplicated
// attribution record set. Deduplication happens here, in first-seen order
// across the concatenated response stream: the first occurrence of a
// (conv_id, session_id) key wins within a run. It fails only when nothing
// usable remains or the total attribution weight is not positive; everything
// else is absorbed into the diagnostics summary.
func Reconcile(responses []model.RawResponse) ([]model.AttributionRecord, error) {
	candidates := make([]interface{}, 0)
	errorCounts := make(map[string]int)
	structureSamples := make([]interface{}, 0, invalidStructureSampleLimit)

	for idx, raw := range responses {
		classified := model.ClassifyResponse(raw)

		switch classified.Kind {
		case model.ResponseSuccess:
			candidates = append(candidates, classified.Items...)
			for _, failure := range classified.PartialFailures {
				errorCounts["partial_failure"]++
				log.WithFields(log.Fields{"response": idx, "failure": failure}).Warn("Partial failure in response.")
			}
		case model.ResponseMissingValue:
			errorCounts["missing_value"]++
			log.WithField("response", idx).Warn("Response has status 200 but no value list.")
			if len(structureSamples) < invalidStructureSampleLimit {
				structureSamples = append(structureSamples, classified.Raw)
			}
		case model.ResponseLegacy, model.ResponseFlatList:
			candidates = append(candidates, classified.Items...)
		case model.ResponseError:
			errorCounts[classified.ErrorCode]++
			log.WithFields(log.Fields{
				"response": idx,
				"error":    classified.ErrorMessage,
			}).Error("API error in response.")
		case model.ResponseInvalidStructure:
			errorCounts["invalid_structure"]++
			if len(structureSamples) < invalidStructureSampleLimit {
				structureSamples = append(structureSamples, classified.Raw)
			}
		default:
			errorCounts["invalid_type"]++
			if len(structureSamples) < invalidStructureSampleLimit {
				structureSamples = append(structureSamples, classified.Raw)
			}
		}
	}

	logDiagnostics(errorCounts, structureSamples)

	if len(candidates) == 0 {
		return nil, errors.Wrapf(ErrNoAttributionData, "diagnostics: %v", errorCounts)
	}

	records := make([]model.AttributionRecord, 0, len(candidates))
	seen := make(map[recordKey]bool)
	totalIHC := 0.0

	for _, candidate := range candidates {
		fields, ok := candidate.(map[string]interface{})
		if !ok {
			log.Warn("Skipping non-object attribution entry.")
			continue
		}

		convRaw, hasConv := fields["conversion_id"]
		sessionRaw, hasSession := fields["session_id"]
		ihcRaw, hasIHC := fields["ihc"]
		if !hasConv || !hasSession || !hasIHC {
			log.Warn("Skipping incomplete attribution entry.")
			continue
		}

		record := model.AttributionRecord{
			ConvID:    U.GetValueAsString(convRaw),
			SessionID: U.GetValueAsString(sessionRaw),
			IHC:       U.CleanFloat(U.GetValueAsFloat64(ihcRaw, 0.0)),
		}
		if record.ConvID == "" || record.SessionID == "" {
			log.Warn("Skipping attribution entry with empty conversion/session id.")
			continue
		}

		key := recordKey{convID: record.ConvID, sessionID: record.SessionID}
		if seen[key] {
			log.WithFields(log.Fields{
				"conv_id":    record.ConvID,
				"session_id": record.SessionID,
			}).Warn("dropping duplicate attribution entry")
			continue
		}
		seen[key] = true

		records = append(records, record)
		totalIHC += record.IHC
	}

	if len(records) == 0 {
		return nil, ErrNoAttributionData
	}
	if totalIHC <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveIHC, "total ihc %f", totalIHC)
	}

	log.WithFields(log.Fields{
		"records":   len(records),
		"total_ihc": totalIHC,
	}).Info("Reconciled attribution records.")
	return records, nil
}

// logDiagnostics summarizes the per-category failure counts. The summary is
// emitted even when reconciliation succeeds overall.
func logDiagnostics(errorCounts map[string]int, structureSamples []interface{}) {
	if len(errorCounts) == 0 {
		return
	}

	total := 0
	for _, count := range errorCounts {
		total += count
	}
	log.WithFields(log.Fields{
		"total":      total,
		"categories": errorCounts,
	}).Warn("API responses contained errors.")

	for i, sample := range structureSamples {
		log.WithFields(log.Fields{"sample": i + 1, "payload": sample}).Warn("Invalid structure example.")
	}
}
