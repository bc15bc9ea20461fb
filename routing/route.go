// Package routing describes every API endpoint the client can call.
//
// Each endpoint is a struct implementing [Route]. A route carries exactly the
// identifiers and filters its endpoint needs and maps them, without any
// fallible step, to an HTTP method, a path, and query parameters. Paths and
// parameter names follow the remote API's documented contract and must not
// be changed.
package routing

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	queryEncoder = schema.NewEncoder()
	validate     = validator.New()
)

// Route is a single endpoint call.
// The set of routes is closed: only types in this package implement it.
type Route interface {
	// Method returns the HTTP method.
	Method() string

	// Path returns the path relative to the API base, without a leading
	// slash. Identifiers are formatted as decimal strings.
	Path() string

	// Query returns the query parameters. Optional parameters that were not
	// set are absent; they are never sent empty.
	Query() url.Values

	route()
}

// PathAndQuery renders the route as "path?query", omitting the separator
// when there are no query parameters. Keys are sorted.
func PathAndQuery(r Route) string {
	q := r.Query()
	if len(q) == 0 {
		return r.Path()
	}
	return r.Path() + "?" + q.Encode()
}

// Validate checks the route's field constraints, such as identifiers being
// nonzero. It reports validator.ValidationErrors on failure.
func Validate(r Route) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("routing: %T: %w", r, err)
	}
	return nil
}

// encodeQuery encodes the schema-tagged fields of a route. Route field types
// are fixed and always encodable, so a failure is a programming error.
func encodeQuery(r Route) url.Values {
	q := url.Values{}
	if err := queryEncoder.Encode(r, q); err != nil {
		panic(fmt.Sprintf("routing: encoding query for %T: %v", r, err))
	}
	return q
}
