package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/jobs"
)

// StartDigestCron schedules the unread-message digest on the given cron
// expression (e.g. "0 8 * * *" for daily at 08:00).
func StartDigestCron(digest *jobs.UnreadDigest, schedule string) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := digest.Run(context.Background()); err != nil {
			logrus.WithError(err).Error("Unread digest run failed")
		}
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to schedule unread digest")
		return
	}

	c.Start()
	logrus.WithField("schedule", schedule).Info("Unread digest scheduled")
}
