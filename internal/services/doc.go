// Package services contains the HTTP client for the remote movie collection API.
//
// [MovieService] orchestrates the three collection operations (list, create,
// delete) against `{base}/movies`. Every authenticated request asks the
// injected [TokenFunc] for a fresh bearer token; the session provider's
// caching and refresh behavior stay opaque to this package.
//
// Failures are classified at the operation boundary: 401/403 on list maps to
// [shared.ErrUnauthorized], an incomplete draft maps to
// [shared.ErrValidation] without any network call, and every other non-2xx
// response becomes a [StatusError] carrying the HTTP status and, when the
// server supplied one, its error message.
package services
