package models

import "time"

const (
	// RateWindow is how long a user waits between allocations from one country.
	RateWindow = 24 * time.Hour
	// HistoryRetention bounds the per-user request history.
	HistoryRetention = 7 * 24 * time.Hour

	DefaultScannerCountry = "uk"
)

// UsedRecord is one handed-out address. Exactly one of UserIP and UserID is
// normally set, depending on whether the caller was authenticated.
type UsedRecord struct {
	Address   string `json:"address" example:"185.51.200.2"`
	Timestamp int64  `json:"timestamp" example:"1718000000000"`
	UserIP    string `json:"user_ip,omitempty" example:"203.0.113.7"`
	UserID    string `json:"user_id,omitempty" example:"123456789"`
	Country   string `json:"country,omitempty" example:"uk"`
}

// HistoryEntry records a successful allocation for rate limiting.
type HistoryEntry struct {
	Timestamp int64  `json:"timestamp"`
	Address   string `json:"address"`
}

// State is the mutable view of one country's pool inside a transaction.
// History is only loaded when the transaction is scoped to a user.
type State struct {
	Available []string
	Used      []UsedRecord
	History   []HistoryEntry
}

// Requester identifies who is allocating. Entry labels the entry point
// (scanner, dns) for metrics.
type Requester struct {
	UserID string
	IP     string
	Entry  string
}

type Stats struct {
	Country   string `json:"country" example:"uk"`
	Available int    `json:"available" example:"12"`
	Used      int    `json:"used" example:"3"`
	Total     int    `json:"total" example:"15"`
}

type Allocation struct {
	Address   string `json:"address" example:"185.51.200.2"`
	Remaining int    `json:"remaining" example:"11"`
}

type Eligibility struct {
	Eligible          bool  `json:"eligible"`
	RetryAfterSeconds int64 `json:"retry_after_seconds"`
}

type Snapshot struct {
	Country   string       `json:"country"`
	Available []string     `json:"available"`
	Used      []UsedRecord `json:"used"`
}

type AddResult struct {
	Added      int      `json:"added"`
	Duplicates int      `json:"duplicates"`
	Rejected   []string `json:"rejected"`
	Available  int      `json:"available"`
}

type StatsRequest struct {
	Country string `json:"country" example:"uk"`
}

type AddAddressesRequest struct {
	Addresses []string `json:"addresses"`
	// Text is a newline separated alternative to Addresses.
	Text string `json:"text"`
}

type ReleaseRequest struct {
	Address string `json:"address" example:"185.51.200.2"`
}
