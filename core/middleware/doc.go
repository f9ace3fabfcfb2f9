// Package middleware contains HTTP middleware for the Fiber application.
//
// Subpackages:
//   - rayid: assigns a unique ray id to every request for log correlation
//   - auth: protects the API with a static API key
package middleware
