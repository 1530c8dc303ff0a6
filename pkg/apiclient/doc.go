// Package apiclient provides the JSON REST transport shared by every
// resource package in signkit.
//
// The client is deliberately dumb: it knows how to attach the bearer
// token, encode/decode JSON, unwrap the backend's paginated envelope and
// classify failures, but it has no knowledge of companies or documents.
// Resource packages compose endpoint paths on top of Get/Post/Patch/
// Delete.
//
// # Errors
//
// Non-2xx responses become *APIError values wrapping one of the
// sentinels ErrUnauthorized (401), ErrNotFound (404) or ErrRequestFailed
// (everything else), so callers can branch with errors.Is while still
// reaching the status code and the server-provided message via
// errors.As. Transport failures (DNS, refused connection, timeout) are
// returned as wrapped errors from net/http and are never APIErrors.
//
// A 401 additionally fires the WithOnUnauthorized hook, which host
// applications use for global sign-out.
//
// # Configuration
//
//	cfg, err := apiclient.LoadConfig() // SIGNKIT_API_URL et al., .env aware
//	client, err := apiclient.New(cfg,
//		apiclient.WithTokenSource(tokenStore),
//		apiclient.WithOnUnauthorized(signOut),
//	)
package apiclient
