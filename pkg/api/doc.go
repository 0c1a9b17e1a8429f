// Package api defines the request and response messages of the mosquefund
// RPC services. Messages travel as JSON; amounts are decimal strings.
package api
