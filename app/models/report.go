package models

// Report collections pulled for chargeback investigation, all filtered by
// email and passed through with whatever schema the documents carry.
const (
	CollectionRefreshes      = "refreshes"
	CollectionRequests       = "requests"
	CollectionProfiles       = "profiles"
	CollectionProfileReviews = "profileReviews"
)

// ReportCollections lists the collections included in a report bundle, in
// display order.
var ReportCollections = []string{
	CollectionRefreshes,
	CollectionRequests,
	CollectionProfiles,
	CollectionProfileReviews,
}

// Report bundles the per-user documents from the four reporting collections.
// A failed collection read leaves its slice empty and records the error under
// Errors, so a partial bundle still renders.
type Report struct {
	Email          string                   `json:"email"`
	Refreshes      []map[string]interface{} `json:"refreshes"`
	Requests       []map[string]interface{} `json:"requests"`
	Profiles       []map[string]interface{} `json:"profiles"`
	ProfileReviews []map[string]interface{} `json:"profileReviews"`
	Errors         map[string]string        `json:"errors,omitempty"`
}

// NewReport returns a bundle with all four sequences present and empty.
func NewReport(email string) *Report {
	return &Report{
		Email:          email,
		Refreshes:      []map[string]interface{}{},
		Requests:       []map[string]interface{}{},
		Profiles:       []map[string]interface{}{},
		ProfileReviews: []map[string]interface{}{},
	}
}

// Set assigns rows to the sequence for the given collection name.
func (r *Report) Set(collection string, rows []map[string]interface{}) {
	switch collection {
	case CollectionRefreshes:
		r.Refreshes = rows
	case CollectionRequests:
		r.Requests = rows
	case CollectionProfiles:
		r.Profiles = rows
	case CollectionProfileReviews:
		r.ProfileReviews = rows
	}
}

// RecordError notes a failed collection read without failing the bundle.
func (r *Report) RecordError(collection string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[collection] = err.Error()
}
