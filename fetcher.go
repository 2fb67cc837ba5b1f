package podnote

import (
	"context"
	"net/http"
)

// UserAgent is sent with every page request.
const UserAgent = "Mozilla/5.0"

// FetchRequest describes the single GET issued for an episode page.
type FetchRequest struct {
	Host   Host
	Path   string
	Method string
	Header http.Header
}

// NewFetchRequest returns a GET request for path on host.
func NewFetchRequest(host Host, path string) *FetchRequest {
	header := make(http.Header)
	header.Set("User-Agent", UserAgent)
	return &FetchRequest{
		Host:   host,
		Path:   path,
		Method: http.MethodGet,
		Header: header,
	}
}

// URL returns the absolute HTTPS URL of the request.
func (r *FetchRequest) URL() string {
	return "https://" + string(r.Host) + ":443" + r.Path
}

// Fetcher retrieves the raw page for a request.
type Fetcher interface {
	// Fetch performs exactly one request and returns the body as UTF-8 text.
	// Transport failures return ENETWORK wrapping the cause.
	Fetch(ctx context.Context, req *FetchRequest) (string, error)
}
