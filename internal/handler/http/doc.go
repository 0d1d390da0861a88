// Package http serves the notes API over chi.
//
// Routes:
//   - GET / and GET /version for health and release information;
//   - /auth/... for register (alias signup), login, logout, me and
//     check_session, all backed by a session cookie;
//   - /notes/... for listing with page and per_page, and create, read,
//     update (PUT or PATCH) and delete of the caller's notes.
//
// Every request passes trace id, access log, panic recovery, gzip, optional
// HashSHA256 integrity checks, the request timeout and session resolution, in
// that order. Errors are written as {"error": "..."} with the status chosen
// by errorStatusMap.
package http
