// Package api defines the request and response messages of the futmanager
// RPC services. Messages travel as JSON; field names match the JSON the
// browser front-end already stores, so the same objects can be exported
// from local storage and posted back unchanged.
package api
