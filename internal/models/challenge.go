package model

import (
	"time"
)

// Challenge is a date-bounded step competition. Dates are calendar dates
// (YYYY-MM-DD) interpreted in the challenge's timezone, both inclusive.
type Challenge struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	StartDate          string    `json:"startDate"`
	EndDate            string    `json:"endDate"`
	IsActive           bool      `json:"isActive"`
	ReportingThreshold int       `json:"reportingThreshold"` // percent, 0-100
	Timezone           string    `json:"timezone"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
