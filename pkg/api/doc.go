// Package api defines the request and response messages of the FinTrack
// Connect services. Messages travel as JSON; amounts are decimal strings.
package api
