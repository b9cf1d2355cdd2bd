// Package lifecycle defines shared start/stop timeouts for long-lived resources.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
