package workers

import (
	"context"
	"log"
	"time"

	"memory-game-system/services"
)

// PollSystemInfo keeps the system info snapshot fresh so the status page
// never waits on the CPU sampling window. Runs until the context is done.
func PollSystemInfo(ctx context.Context, svc *services.SysInfoService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := svc.Sample(); err != nil {
		log.Printf("[SysInfo] initial sample failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Sample(); err != nil {
				log.Printf("[SysInfo] sample failed: %v", err)
			}
		}
	}
}
