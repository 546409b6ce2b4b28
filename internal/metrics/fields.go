package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrVerifier = "verifier"
	AttrCategory = "category"
	AttrOutcome  = "outcome"
)

// Draw outcomes recorded by RecordDraw.
const (
	OutcomeAssigned    = "assigned"
	OutcomeExhausted   = "exhausted"
	OutcomeIneligible  = "ineligible"
	OutcomeStoreFailed = "store_error"
)
