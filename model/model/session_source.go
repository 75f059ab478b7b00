package model

// SessionSource Model session_sources table. Rows are produced by the upstream
// tracking pipeline and treated as read-only here.
type SessionSource struct {
	SessionID             string `gorm:"column:session_id;primary_key:true" json:"session_id"`
	ChannelName           string `gorm:"column:channel_name" json:"channel_name"`
	EventDate             string `gorm:"column:event_date" json:"event_date"`
	EventTime             string `gorm:"column:event_time" json:"event_time"`
	HolderEngagement      int    `gorm:"column:holder_engagement" json:"holder_engagement"`
	CloserEngagement      int    `gorm:"column:closer_engagement" json:"closer_engagement"`
	ImpressionInteraction int    `gorm:"column:impression_interaction" json:"impression_interaction"`
	UserID                string `gorm:"column:user_id" json:"user_id"`
}

func (SessionSource) TableName() string {
	return "session_sources"
}

// Timestamp returns the session timestamp as "YYYY-MM-DD HH:MM:SS". Dates and
// times are stored as separate text columns, so string comparison of these
// timestamps matches chronological order.
func (s *SessionSource) Timestamp() string {
	return s.EventDate + " " + s.EventTime
}
