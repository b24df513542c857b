// Public domain.

//go:build !unix

package pipeline

import "time"

// childCPU is not available on this platform.
func childCPU() time.Duration { return 0 }
