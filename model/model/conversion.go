package model

// Conversion Model conversions table.
type Conversion struct {
	ConvID   string  `gorm:"column:conv_id;primary_key:true" json:"conv_id"`
	UserID   string  `gorm:"column:user_id" json:"user_id"`
	ConvDate string  `gorm:"column:conv_date" json:"conv_date"`
	ConvTime string  `gorm:"column:conv_time" json:"conv_time"`
	Revenue  float64 `gorm:"column:revenue" json:"revenue"`
}

func (Conversion) TableName() string {
	return "conversions"
}

// Timestamp returns the conversion timestamp as "YYYY-MM-DD HH:MM:SS".
func (c *Conversion) Timestamp() string {
	return c.ConvDate + " " + c.ConvTime
}
