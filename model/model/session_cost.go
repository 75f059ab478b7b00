package model

// SessionCost Model session_costs table. Not every session carries a cost row.
type SessionCost struct {
	SessionID string  `gorm:"column:session_id;primary_key:true" json:"session_id"`
	Cost      float64 `gorm:"column:cost" json:"cost"`
	Date      string  `gorm:"column:date" json:"date"`
}

func (SessionCost) TableName() string {
	return "session_costs"
}
