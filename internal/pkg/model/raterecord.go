package model

type (
	ZIP  string
	Rate string
)

// RateRecord is one row of the rates dataset. Both fields are kept verbatim:
// ZIP codes may carry leading zeros and rates are never parsed as numbers.
type RateRecord struct {
	ZIP  ZIP  `json:"zip"`
	Rate Rate `json:"rate"`
}
