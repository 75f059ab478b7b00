package model

// ChannelReporting Model channel_reporting table. The table is fully
// recomputed on every aggregation run; rows are never merged incrementally.
type ChannelReporting struct {
	ChannelName string  `gorm:"column:channel_name;primary_key:true" json:"channel_name"`
	Date        string  `gorm:"column:date;primary_key:true" json:"date"`
	Cost        float64 `gorm:"column:cost" json:"cost"`
	IHC         float64 `gorm:"column:ihc" json:"ihc"`
	IHCRevenue  float64 `gorm:"column:ihc_revenue" json:"ihc_revenue"`
}

func (ChannelReporting) TableName() string {
	return "channel_reporting"
}

// CPO is the cost per attributed order, 0 when no attribution weight landed on
// the row.
func (cr *ChannelReporting) CPO() float64 {
	if cr.IHC > 0 {
		return cr.Cost / cr.IHC
	}
	return 0
}

// ROAS is the return on ad spend, 0 for rows without cost.
func (cr *ChannelReporting) ROAS() float64 {
	if cr.Cost > 0 {
		return cr.IHCRevenue / cr.Cost
	}
	return 0
}
