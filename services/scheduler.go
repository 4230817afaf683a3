// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartReconcileScheduler rebuilds every cached summary from the game log on
// an interval. The summaries are overwritten in full after each game anyway,
// so this only matters when a post-record persist failed and left a row stale.
func (s *StatsService) StartReconcileScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			log.Println("[Reconcile] rebuilding statistics summaries")
			s.ReconcileAll()
		}),
	)
}
