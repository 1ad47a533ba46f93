// Package session wraps the third-party identity provider that filmoteca
// delegates login to.
//
// [Provider] owns the authenticated session lifecycle: the browser login
// redirect, logout, and silent access token acquisition through an [oauth2]
// token source. The provider's refresh behavior is consumed as opaque; callers
// request a fresh token before every authenticated API call instead of
// caching one.
//
// Tokens are persisted across runs in a SQLite [Store], keyed by provider
// domain, standing in for the token cache a hosted provider SDK would keep.
package session
