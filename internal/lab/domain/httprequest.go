package domain

// HTTPRequest holds the inputs an HTTP/1.1 request is assembled from.
// ExtraHeader is a raw header line inserted verbatim after the Host
// header; it is never parsed or validated into name and value, so a
// deliberately malformed line renders exactly as typed. Body is appended
// after the blank line with no terminator added.
type HTTPRequest struct {
	Method      string
	Path        string
	Host        string
	ExtraHeader string
	Body        string
}
