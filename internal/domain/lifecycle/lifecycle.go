// Package lifecycle holds shared values for process start-up and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart/OnStop hook, such as pinging the database
// or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
