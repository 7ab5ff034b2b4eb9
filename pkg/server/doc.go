// Package server provides the HTTP server and routing for the access
// request API.
package server
