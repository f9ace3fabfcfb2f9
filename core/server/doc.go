// Package server holds configuration for the optional HTTP surface exposed
// by the serve command. The server is a thin control plane over the sync
// engine: health, status, and batch triggering. It is not a webhook receiver.
package server
