package attribution

import (
	"attribution/model/model"

	log "github.com/sirupsen/logrus"
)

// BuildJourneyEntries joins each conversion to its user's sessions up to and
// including the conversion timestamp. The session whose timestamp equals the
// conversion's becomes the journey's converting entry. Sessions without a
// channel or event date are unusable for attribution and skipped up front.
func BuildJourneyEntries(sessions []model.SessionSource, conversions []model.Conversion) ([]model.JourneyEntry, error) {
	sessionsByUser := make(map[string][]model.SessionSource)
	skipped := 0
	for _, session := range sessions {
		if session.ChannelName == "" || session.EventDate == "" {
			skipped++
			continue
		}
		sessionsByUser[session.UserID] = append(sessionsByUser[session.UserID], session)
	}
	if skipped > 0 {
		log.WithField("skipped", skipped).Warn("Skipped sessions without channel or event date.")
	}

	entries := make([]model.JourneyEntry, 0)
	for i := range conversions {
		conversion := &conversions[i]
		convTimestamp := conversion.Timestamp()

		for j := range sessionsByUser[conversion.UserID] {
			session := &sessionsByUser[conversion.UserID][j]
			sessionTimestamp := session.Timestamp()
			if sessionTimestamp > convTimestamp {
				continue
			}

			isConversion := 0
			if sessionTimestamp == convTimestamp {
				isConversion = 1
			}

			entries = append(entries, model.JourneyEntry{
				ConversionID:          conversion.ConvID,
				SessionID:             session.SessionID,
				Timestamp:             sessionTimestamp,
				ChannelLabel:          session.ChannelName,
				HolderEngagement:      session.HolderEngagement,
				CloserEngagement:      session.CloserEngagement,
				Conversion:            isConversion,
				ImpressionInteraction: session.ImpressionInteraction,
			})
		}
	}

	log.WithFields(log.Fields{
		"sessions":    len(sessions),
		"conversions": len(conversions),
		"entries":     len(entries),
	}).Info("Created journey entries.")

	if len(entries) == 0 {
		return nil, ErrNoJourneyEntries
	}
	return entries, nil
}
