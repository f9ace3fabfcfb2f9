// Package storefront provides the client for the commerce platform API.
//
// The platform exposes two surfaces that the sync engine consumes: a
// versioned admin REST API and an admin GraphQL API. Both are reached
// through the Client interface so feature code can be tested against mocks.
//
// # Error Taxonomy
//
// Non-2xx REST responses are returned as *StatusError; IsNotFound identifies
// the 404 case that drives protocol fallback during inventory writes.
// GraphQL mutations additionally report structured user-level errors, which
// callers surface as *UserErrorsError.
//
// # Pagination
//
// List endpoints paginate via the Link response header. NextPageInfo extracts
// the page_info cursor for the next page.
package storefront
