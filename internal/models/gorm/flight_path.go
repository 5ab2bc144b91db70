package gorm

import "time"

// FlightPath is the cached path for a flight code together with the airport
// snapshot it was built from. Expires is epoch seconds.
type FlightPath struct {
	FlightCode      string    `gorm:"column:flight_code;primaryKey;type:varchar(8)"`
	Origin          string    `gorm:"column:origin;type:text"`
	OriginCode      string    `gorm:"column:origin_code;type:varchar(4)"`
	OriginLat       float64   `gorm:"column:origin_lat"`
	OriginLong      float64   `gorm:"column:origin_long"`
	Destination     string    `gorm:"column:destination;type:text"`
	DestinationCode string    `gorm:"column:destination_code;type:varchar(4)"`
	DestinationLat  float64   `gorm:"column:destination_lat"`
	DestinationLong float64   `gorm:"column:destination_long"`
	Expires         int64     `gorm:"column:expires;not null;index"`
	Path            string    `gorm:"column:path;type:text;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM
func (FlightPath) TableName() string {
	return "flight_paths"
}
