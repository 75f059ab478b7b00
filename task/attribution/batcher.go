package attribution

import (
	"attribution/model/model"

	log "github.com/sirupsen/logrus"
)

// API limits from the IHC documentation.
const (
	MaxJourneysPerRequest = 85
	MaxSessionsPerRequest = 2750
)

// Batch is an ordered run of journey entries, whole journeys only.
type Batch []model.JourneyEntry

// groupByConversionID splits entries into journeys, preserving the first-seen
// order of conversion ids.
func groupByConversionID(entries []model.JourneyEntry) ([]string, map[string][]model.JourneyEntry) {
	order := make([]string, 0)
	journeys := make(map[string][]model.JourneyEntry)
	for _, entry := range entries {
		if _, seen := journeys[entry.ConversionID]; !seen {
			order = append(order, entry.ConversionID)
		}
		journeys[entry.ConversionID] = append(journeys[entry.ConversionID], entry)
	}
	return order, journeys
}

// CreateBatches packs whole journeys into batches respecting both the journey
// and the session limit. Capacity is checked before a journey is added, never
// after: a single journey larger than the session limit is kept intact and
// shipped in an oversized batch of its own, with a warning, because splitting
// it would break attribution within the journey (see DESIGN.md). Empty input
// yields no batches.
func CreateBatches(entries []model.JourneyEntry) []Batch {
	order, journeys := groupByConversionID(entries)

	batches := make([]Batch, 0)
	var current Batch
	currentJourneys := 0
	currentSessions := 0

	for _, convID := range order {
		sessions := journeys[convID]

		if currentJourneys+1 > MaxJourneysPerRequest ||
			currentSessions+len(sessions) > MaxSessionsPerRequest {
			if len(current) > 0 {
				batches = append(batches, current)
			}
			current = nil
			currentJourneys = 0
			currentSessions = 0
		}

		if len(sessions) > MaxSessionsPerRequest {
			log.WithFields(log.Fields{
				"conversion_id": convID,
				"sessions":      len(sessions),
			}).Warn("Journey exceeds the session limit, sending it whole.")
		}

		current = append(current, sessions...)
		currentSessions += len(sessions)
		currentJourneys++
	}

	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches
}
