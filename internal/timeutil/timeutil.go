// Package timeutil provides the canonical timestamp used across the service.
package timeutil

import "time"

// Now returns the current instant in UTC. Every record and response timestamp
// goes through this function so the whole API speaks one time zone.
func Now() time.Time {
	return time.Now().UTC()
}
