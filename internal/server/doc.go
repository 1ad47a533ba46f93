// Package server provides the temporary localhost HTTP surface used during login.
//
// When the user runs `filmoteca auth login`, a short-lived server starts on the
// configured callback address, receives the identity provider's redirect on
// /callback, exchanges the authorization code for tokens, and shuts down.
//
// [CallbackHandler] validates the state parameter (CSRF protection) and only
// processes one callback to prevent replay. [BasicRouter] is a minimal
// [http.ServeMux]-backed router with middleware support.
package server
