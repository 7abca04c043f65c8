package domain

// ErrorKind classifies request failures so the HTTP boundary can map them
// exhaustively instead of collapsing everything into an opaque 500.
type ErrorKind int

const (
	KindConfigurationMissing ErrorKind = iota // required credential/dependency absent
	KindUpstreamIncomplete                    // provider response missing expected fields
	KindNotFound                              // unknown status-lookup key
	KindStoreWriteFailed                      // best-effort, swallowed on hot paths
	KindMalformedInput                        // unparseable webhook body
)

// Error carries a kind, a human-readable detail and, for upstream-shape
// failures, the raw provider payload for diagnosis.
type Error struct {
	Kind    ErrorKind
	Detail  string
	Payload any
}

func (e *Error) Error() string {
	return e.Detail
}

func ConfigurationMissing(detail string) *Error {
	return &Error{Kind: KindConfigurationMissing, Detail: detail}
}

func UpstreamIncomplete(detail string, payload any) *Error {
	return &Error{Kind: KindUpstreamIncomplete, Detail: detail, Payload: payload}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func StoreWriteFailed(detail string) *Error {
	return &Error{Kind: KindStoreWriteFailed, Detail: detail}
}

func MalformedInput(detail string) *Error {
	return &Error{Kind: KindMalformedInput, Detail: detail}
}
