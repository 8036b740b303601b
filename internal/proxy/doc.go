// Package proxy implements the reverse proxy gateway in front of every
// user's sync-engine and file-browser instances.
//
// A Gateway serves one backend family. It resolves the caller's index from
// the session cookie alone, derives the backend port from it and forwards
// the exchange to that port on the configured upstream host. Requests
// without a valid session are redirected to the login page; upstream
// failures are redirected to the diagnostic error page.
package proxy
