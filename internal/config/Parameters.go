/*

This file contains the default parameters of the pool dashboard.

*/

package config

import "time"

const (
	// DefaultWebPort is the port the dashboard listens on.
	DefaultWebPort = "8080"

	// DefaultPageSize is the number of pool rows shown per "show more" step.
	DefaultPageSize = 10

	// DefaultSessionTTL is how long an idle viewer keeps its sort and page state.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultMaxSessions caps the number of live viewer sessions.
	DefaultMaxSessions = 10000
)
