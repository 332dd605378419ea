package subscription

// Kind classifies why an operation did not fully succeed. Storage failures
// are carried as their own kind so the UI can tell an infrastructure problem
// apart from a legitimate business negative.
type Kind string

const (
	KindNone          Kind = ""
	KindNotFound      Kind = "not_found"
	KindDuplicate     Kind = "duplicate"
	KindMissingExpiry Kind = "missing_expiry"
	KindInvalid       Kind = "invalid"
	KindStorage       Kind = "storage"
)

// OpResult is the outcome of a lifecycle or entitlement operation. Message is
// operator-facing; Err keeps the underlying storage error when Kind is
// KindStorage.
type OpResult struct {
	OK      bool
	Kind    Kind
	Message string
	Err     error
}

// StorageFailed reports whether the operation failed against the database,
// as opposed to a business negative like not-found or duplicate.
func (r OpResult) StorageFailed() bool {
	return r.Kind == KindStorage
}

func ok(message string) OpResult {
	return OpResult{OK: true, Message: message}
}

func fail(kind Kind, message string, err error) OpResult {
	return OpResult{Kind: kind, Message: message, Err: err}
}
