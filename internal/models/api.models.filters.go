// FilePath: internal/models/api.models.filters.go
package models

// Result caps for list endpoints. Both lists are newest-first.
const (
	MaxRecordResults = 500
	MaxAlertResults  = 200
)

// RecordFilters defines the available filter options for record listings.
// Decoded from query parameters (gorilla/schema).
type RecordFilters struct {
	HiveID string `schema:"colmeia"`
	Kind   string `schema:"tipo"`
	Limit  int    `schema:"limit"`
}

// AlertFilters defines the available filter options for alert listings.
// Open=true restricts the result to unacknowledged alerts.
type AlertFilters struct {
	HiveID string `schema:"colmeia"`
	Open   bool   `schema:"aberto"`
	Limit  int    `schema:"limit"`
}

// HiveFilters filters hive listings by owning apiary.
type HiveFilters struct {
	ApiaryID string `schema:"apiario"`
}
