// Package server runs the HTTP server and its shutdown sequence.
//
// On SIGTERM, SIGINT or SIGQUIT the listener is drained first; after that
// the registered shutdown hooks run in order, sharing one deadline.
package server
