package model

// ProxyRequest is one logged proxy transaction. Every field except ID may be
// nil when the proxy failed to capture it.
type ProxyRequest struct {
	ID                   string   `json:"id" validate:"required"`
	Time                 *float64 `json:"time" validate:"omitnil,gte=0"` // seconds since epoch
	Error                *string  `json:"error"`
	ClientIP             *string  `json:"clientIP"`
	ProxyAuthorization   *string  `json:"proxyAuthorization"`
	Method               *string  `json:"method"`
	URL                  *string  `json:"url"`
	RawHTTPRequest       *string  `json:"rawHTTPRequest"`  // base64
	RawHTTPResponse      *string  `json:"rawHTTPResponse"` // base64
	ProcessingTime       *float64 `json:"processingTime" validate:"omitnil,gte=0"`
	UpstreamResponseTime *float64 `json:"upstreamResponseTime" validate:"omitnil,gte=0"`
}

// Envelope wraps every API response.
type Envelope[T any] struct {
	Data  T       `json:"data"`
	Error *string `json:"error"`
}

// ProxyRequestList is the envelope returned by the list endpoint.
type ProxyRequestList struct {
	Data  []ProxyRequest `json:"data" validate:"unique=ID,dive"`
	Error *string        `json:"error"`
}

// FilterByID returns records without the entry identified by id, keeping the
// order of the rest. The input slice is not modified.
func FilterByID(records []ProxyRequest, id string) []ProxyRequest {
	out := make([]ProxyRequest, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
