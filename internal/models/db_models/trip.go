package db_models

import (
	"time"

	"github.com/lib/pq"
)

// Trip is the persisted record of one planned trip. ItineraryJSON holds
// the merged structured itinerary; trips imported from free text start
// with only ItineraryText set and get the structured form on first
// read.
type Trip struct {
	BaseModel
	StartingPoint string
	Destination   string `gorm:"index"`
	StartDate     time.Time
	EndDate       time.Time
	Interests     string
	Budget        string

	Overview   string
	DayCount   int
	Highlights pq.StringArray `gorm:"type:text[]"`

	ItineraryText string `gorm:"type:text"`
	ItineraryJSON []byte `gorm:"type:jsonb"`
}
