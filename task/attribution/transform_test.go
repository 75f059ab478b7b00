package attribution

import (
	"testing"

	"attribution/model/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildJourneyEntries(t *testing.T) {
	sessions := []model.SessionSource{
		{SessionID: "s1", UserID: "u1", ChannelName: "Direct", EventDate: "2023-09-01", EventTime: "10:00:00", HolderEngagement: 1},
		{SessionID: "s2", UserID: "u1", ChannelName: "Email_NewsLetter", EventDate: "2023-09-01", EventTime: "11:00:00", CloserEngagement: 1},
		{SessionID: "s3", UserID: "u1", ChannelName: "Direct", EventDate: "2023-09-01", EventTime: "12:00:00"},
		{SessionID: "s4", UserID: "u2", ChannelName: "Direct", EventDate: "2023-09-01", EventTime: "09:00:00"},
	}
	conversions := []model.Conversion{
		{ConvID: "c1", UserID: "u1", ConvDate: "2023-09-01", ConvTime: "11:00:00", Revenue: 120},
	}

	entries, err := BuildJourneyEntries(sessions, conversions)

	assert.NoError(t, err)
	// s3 is after the conversion, s4 belongs to another user.
	assert.Equal(t, []model.JourneyEntry{
		{
			ConversionID:     "c1",
			SessionID:        "s1",
			Timestamp:        "2023-09-01 10:00:00",
			ChannelLabel:     "Direct",
			HolderEngagement: 1,
			Conversion:       0,
		},
		{
			ConversionID:     "c1",
			SessionID:        "s2",
			Timestamp:        "2023-09-01 11:00:00",
			ChannelLabel:     "Email_NewsLetter",
			CloserEngagement: 1,
			Conversion:       1,
		},
	}, entries)
}

func TestBuildJourneyEntriesSkipsUnusableSessions(t *testing.T) {
	sessions := []model.SessionSource{
		{SessionID: "s1", UserID: "u1", ChannelName: "", EventDate: "2023-09-01", EventTime: "10:00:00"},
		{SessionID: "s2", UserID: "u1", ChannelName: "Direct", EventDate: "", EventTime: "10:30:00"},
		{SessionID: "s3", UserID: "u1", ChannelName: "Direct", EventDate: "2023-09-01", EventTime: "11:00:00"},
	}
	conversions := []model.Conversion{
		{ConvID: "c1", UserID: "u1", ConvDate: "2023-09-01", ConvTime: "11:00:00"},
	}

	entries, err := BuildJourneyEntries(sessions, conversions)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "s3", entries[0].SessionID)
	assert.Equal(t, 1, entries[0].Conversion)
}

func TestBuildJourneyEntriesEmptyIsFatal(t *testing.T) {
	sessions := []model.SessionSource{
		{SessionID: "s1", UserID: "u1", ChannelName: "Direct", EventDate: "2023-09-02", EventTime: "10:00:00"},
	}
	conversions := []model.Conversion{
		{ConvID: "c1", UserID: "u9", ConvDate: "2023-09-01", ConvTime: "11:00:00"},
	}

	entries, err := BuildJourneyEntries(sessions, conversions)

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrNoJourneyEntries)
}
