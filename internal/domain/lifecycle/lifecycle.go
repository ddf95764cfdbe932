// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of serving surfaces.
const DefaultTimeout = 10 * time.Second
