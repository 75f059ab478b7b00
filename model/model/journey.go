package model

// JourneyEntry is the wire unit sent to the IHC API: one row per
// (conversion, contributing session) pair. Within a journey exactly one entry
// carries Conversion=1, the session whose timestamp equals the conversion's.
type JourneyEntry struct {
	ConversionID          string `json:"conversion_id"`
	SessionID             string `json:"session_id"`
	Timestamp             string `json:"timestamp"`
	ChannelLabel          string `json:"channel_label"`
	HolderEngagement      int    `json:"holder_engagement"`
	CloserEngagement      int    `json:"closer_engagement"`
	Conversion            int    `json:"conversion"`
	ImpressionInteraction int    `json:"impression_interaction"`
}

type RedistributionRule struct {
	Direction                   string   `json:"direction"`
	ReceiveThreshold            float64  `json:"receive_threshold"`
	RedistributionChannelLabels []string `json:"redistribution_channel_labels"`
}

type RedistributionParameter struct {
	Initializer RedistributionRule `json:"initializer"`
	Holder      RedistributionRule `json:"holder"`
	Closer      RedistributionRule `json:"closer"`
}

// AttributionRequest is the body posted per batch.
type AttributionRequest struct {
	CustomerJourneys        []JourneyEntry          `json:"customer_journeys"`
	RedistributionParameter RedistributionParameter `json:"redistribution_parameter"`
}

// DefaultRedistributionParameter returns the redistribution defaults from the
// IHC API documentation.
func DefaultRedistributionParameter() RedistributionParameter {
	return RedistributionParameter{
		Initializer: RedistributionRule{
			Direction:                   "earlier_sessions_only",
			ReceiveThreshold:            0,
			RedistributionChannelLabels: []string{"Direct", "Email_NewsLetter"},
		},
		Holder: RedistributionRule{
			Direction:                   "any_session",
			ReceiveThreshold:            0,
			RedistributionChannelLabels: []string{"Direct", "Email_NewsLetter"},
		},
		Closer: RedistributionRule{
			Direction:                   "later_sessions_only",
			ReceiveThreshold:            0.1,
			RedistributionChannelLabels: []string{"Direct"},
		},
	}
}
