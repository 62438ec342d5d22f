package domain

import (
	"errors"
	"time"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id,omitempty"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyCount is the visit count for one calendar date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AnalyticsSummary represents aggregated visit statistics for the admin dashboard.
type AnalyticsSummary struct {
	Total  int64        `json:"total"`
	Unique int64        `json:"unique"`
	Today  int64        `json:"today"`
	Daily  []DailyCount `json:"daily"`
	Recent []Visit      `json:"recent"`
}

var ErrMissingIP = errors.New("ip address is required")
