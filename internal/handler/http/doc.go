// Package http implements the HTTP surface of the hub.
//
// It wires the JSON account API, the per-backend reverse proxy gateways and
// the metrics endpoint into one chi router. Tracing, access logging,
// response compression and session checks are middleware in this package;
// everything else is delegated to the service layer.
package http
