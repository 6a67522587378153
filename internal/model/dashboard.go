package model

import (
	"time"
)

// DashboardStats is the farmer dashboard summary.
type DashboardStats struct {
	TotalAppointments int `json:"totalAppointments" db:"total_appointments"`
}

// ActivityItem is a single entry on the recent-activity feed, derived from
// the user's appointments and records.
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
