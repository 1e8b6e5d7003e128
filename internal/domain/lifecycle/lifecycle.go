// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as the
// initial database ping and the HTTP server drain.
const DefaultTimeout = 10 * time.Second
