package attribution

import (
	"github.com/pkg/errors"
)

// Run-level failures. Per-entry and per-attempt problems are absorbed and
// logged with diagnostic counts; only these escalate and abort the pipeline.
var (
	// ErrNoJourneyEntries - the transform produced nothing to attribute.
	ErrNoJourneyEntries = errors.New("no journey entries were created")

	// ErrNoValidResponses - every batch exhausted its retry budget.
	ErrNoValidResponses = errors.New("no valid API responses received")

	// ErrNoAttributionData - responses flattened to zero valid records.
	ErrNoAttributionData = errors.New("API responses contained no valid attribution data")

	// ErrNonPositiveIHC - records exist but their total weight is not positive.
	ErrNonPositiveIHC = errors.New("attribution data contains no valid ihc values")

	// ErrVerificationFailed - the store holds no record with positive weight
	// after the load.
	ErrVerificationFailed = errors.New("no valid attribution records found after load")

	// ErrNoAggregationRows - the channel rollup produced an empty result set.
	ErrNoAggregationRows = errors.New("channel aggregation produced no results")
)
