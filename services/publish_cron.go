package services

import (
	"time"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartPublishCron promotes scheduled posts whose time has come. Runs once at
// startup to catch anything missed while the server was down, then every
// minute.
func StartPublishCron(db *gorm.DB) {
	publishDuePosts(db)

	c := cron.New()
	c.AddFunc("* * * * *", func() {
		publishDuePosts(db)
	})
	c.Start()
}

func publishDuePosts(db *gorm.DB) {
	var due []models.BlogPost
	if err := db.Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", models.StatusScheduled, time.Now()).Find(&due).Error; err != nil {
		utils.LogError(err, "publish cron query")
		return
	}
	for i := range due {
		post := &due[i]
		post.Status = models.StatusPublished
		// PublishedAt is set exactly once, on the first transition.
		if post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		if err := db.Save(post).Error; err != nil {
			utils.LogError(err, "publish cron save")
			continue
		}
		utils.Logger.Info().Uint("post_id", post.ID).Msg("scheduled post published")
	}
}
