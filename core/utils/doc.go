// Package utils provides common utility functions for the dropship-sync
// application. It includes the loose type-conversion helpers used when
// coercing remote payload fields, which may arrive as strings, numbers,
// or nulls depending on the API and procedure.
package utils
