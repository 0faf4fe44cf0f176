package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartNewsletterCron mails a weekly digest of freshly published posts to
// confirmed subscribers, localized per subscriber. Mondays at 09:00.
func StartNewsletterCron(db *gorm.DB) {
	c := cron.New()
	c.AddFunc("0 9 * * 1", func() {
		sendWeeklyDigest(db)
	})
	c.Start()
}

func sendWeeklyDigest(db *gorm.DB) {
	since := time.Now().AddDate(0, 0, -7)
	var posts []models.BlogPost
	if err := db.Where("status = ? AND published_at >= ?", models.StatusPublished, since).
		Order("published_at desc").Find(&posts).Error; err != nil {
		utils.LogError(err, "newsletter cron query")
		return
	}
	if len(posts) == 0 {
		return
	}

	var subs []models.NewsletterSubscriber
	if err := db.Where("confirmed = ?", true).Find(&subs).Error; err != nil {
		utils.LogError(err, "newsletter cron subscribers")
		return
	}

	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "https://newsandniche.com"
	}

	sent := 0
	for _, sub := range subs {
		body := buildDigestHTML(posts, sub, base)
		if body == "" {
			continue
		}
		subject := "News&Niche: this week's stories"
		if sub.Locale == utils.LangBN {
			subject = "নিউজ এন্ড নিশ: এই সপ্তাহের খবর"
		}
		if err := utils.SendHTMLEmail(sub.Email, subject, body,
			os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
			utils.LogError(err, "newsletter cron send")
			continue
		}
		sent++
	}
	utils.Logger.Info().Int("sent", sent).Int("posts", len(posts)).Msg("weekly digest delivered")
}

// buildDigestHTML lists the week's posts in the subscriber's language,
// skipping posts with no content for it. Returns "" when nothing applies.
func buildDigestHTML(posts []models.BlogPost, sub models.NewsletterSubscriber, base string) string {
	var b strings.Builder
	count := 0
	for _, p := range posts {
		title := utils.ParseLocalizedText(p.Title).Get(sub.Locale)
		if title == "" {
			continue
		}
		slug := p.SlugEn
		if sub.Locale == utils.LangBN {
			slug = p.SlugBn
		}
		if slug == "" {
			continue
		}
		excerpt := utils.ParseLocalizedText(p.Excerpt).Get(sub.Locale)
		if excerpt == "" {
			excerpt = utils.ExcerptFrom(utils.ParseLocalizedText(p.Content).Get(sub.Locale), 160)
		}
		fmt.Fprintf(&b, `<h3><a href="%s/%s/blogs/%s">%s</a></h3><p>%s</p>`, base, sub.Locale, slug, title, excerpt)
		count++
	}
	if count == 0 {
		return ""
	}
	fmt.Fprintf(&b, `<hr><p><a href="%s/api/newsletter/unsubscribe/%s">Unsubscribe</a></p>`, base, sub.UnsubscribeToken)
	return b.String()
}
