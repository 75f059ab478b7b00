package attribution

import (
	"fmt"
	"testing"

	"attribution/model/model"

	"github.com/stretchr/testify/assert"
)

func makeJourneyEntries(journeys, sessionsPerJourney int) []model.JourneyEntry {
	entries := make([]model.JourneyEntry, 0, journeys*sessionsPerJourney)
	for j := 0; j < journeys; j++ {
		convID := fmt.Sprintf("conv-%03d", j)
		for s := 0; s < sessionsPerJourney; s++ {
			entries = append(entries, model.JourneyEntry{
				ConversionID: convID,
				SessionID:    fmt.Sprintf("%s-session-%04d", convID, s),
			})
		}
	}
	return entries
}

func TestCreateBatchesEmptyInput(t *testing.T) {
	assert.Len(t, CreateBatches(nil), 0)
	assert.Len(t, CreateBatches([]model.JourneyEntry{}), 0)
}

func TestCreateBatchesBoundarySplit(t *testing.T) {
	// 90 journeys of one session each split exactly at the journey limit.
	batches := CreateBatches(makeJourneyEntries(90, 1))

	assert.Len(t, batches, 2)
	assert.Len(t, batches[0], 85)
	assert.Len(t, batches[1], 5)
}

func TestCreateBatchesSessionLimit(t *testing.T) {
	// 10 journeys of 300 sessions: 9 fit (2700), the 10th would cross 2750.
	batches := CreateBatches(makeJourneyEntries(10, 300))

	assert.Len(t, batches, 2)
	assert.Len(t, batches[0], 2700)
	assert.Len(t, batches[1], 300)
}

func TestCreateBatchesCapacityInvariant(t *testing.T) {
	entries := makeJourneyEntries(200, 17)
	batches := CreateBatches(entries)

	flattened := make([]model.JourneyEntry, 0, len(entries))
	for _, batch := range batches {
		distinct := make(map[string]bool)
		for _, entry := range batch {
			distinct[entry.ConversionID] = true
		}
		assert.LessOrEqual(t, len(distinct), MaxJourneysPerRequest)
		assert.LessOrEqual(t, len(batch), MaxSessionsPerRequest)
		flattened = append(flattened, batch...)
	}

	// No loss, no duplication, no reordering across batch boundaries.
	assert.Equal(t, entries, flattened)
}

func TestCreateBatchesGroupsInterleavedEntries(t *testing.T) {
	entries := []model.JourneyEntry{
		{ConversionID: "c1", SessionID: "s1"},
		{ConversionID: "c2", SessionID: "s2"},
		{ConversionID: "c1", SessionID: "s3"},
	}

	batches := CreateBatches(entries)

	assert.Len(t, batches, 1)
	// Whole journeys in first-seen conversion order.
	assert.Equal(t, Batch{
		{ConversionID: "c1", SessionID: "s1"},
		{ConversionID: "c1", SessionID: "s3"},
		{ConversionID: "c2", SessionID: "s2"},
	}, batches[0])
}

func TestCreateBatchesOversizedJourneyKeptWhole(t *testing.T) {
	entries := make([]model.JourneyEntry, 0)
	entries = append(entries, makeJourneyEntries(1, 100)...)
	big := make([]model.JourneyEntry, 0, 2800)
	for s := 0; s < 2800; s++ {
		big = append(big, model.JourneyEntry{
			ConversionID: "conv-big",
			SessionID:    fmt.Sprintf("conv-big-session-%04d", s),
		})
	}
	entries = append(entries, big...)
	entries = append(entries, model.JourneyEntry{ConversionID: "conv-tail", SessionID: "tail-1"})

	batches := CreateBatches(entries)

	// The oversized journey is never split, so its batch exceeds the session
	// limit on its own.
	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 2800)
	assert.Len(t, batches[2], 1)
}
