package gorm

import "time"

// FlightReference is a registered (flight code, date) pair. Rows are read and
// updated through sqlx; gorm owns the schema.
type FlightReference struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	FlightCode    string    `gorm:"column:flight_code;type:varchar(8);not null;index"`
	Date          string    `gorm:"column:date;type:varchar(10);not null"`
	DepartureTime *int64    `gorm:"column:departure_time"`
	Invalid       *string   `gorm:"column:invalid;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM
func (FlightReference) TableName() string {
	return "flight_ids"
}
