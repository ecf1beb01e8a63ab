package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"

	"gorm.io/gorm"
)

var defaultPricing = []domain.PricingEntry{
	{Name: "Community", Description: "Single event coordination", Price: 49},
	{Name: "Organization", Description: "Unlimited events for one organization", Price: 199},
	{Name: "Enterprise", Description: "Multi-site volunteer programs with reporting", Price: 799},
}

var sampleHistory = []domain.VolunteerHistory{
	{EventName: "Food Bank Sorting", EventDescription: "Sort and pack donated groceries", Location: "Houston, TX", Skills: "lifting,organization", Urgency: "medium", EventDate: "2024-03-09"},
	{EventName: "Park Cleanup", EventDescription: "Trail litter pickup", Location: "Austin, TX", Skills: "outdoors", Urgency: "low", EventDate: "2024-04-20"},
}

var sampleNotifications = []string{
	"You have been matched to Food Bank Sorting.",
	"Park Cleanup moved to 9:00 AM.",
}

var ErrSeedUserNotFound = errors.New("seed user not found")

type SeedReport struct {
	CreatedPricing       int  `json:"created_pricing"`
	CreatedHistory       int  `json:"created_history"`
	CreatedNotifications int  `json:"created_notifications"`
	Noop                 bool `json:"noop"`
}

// SeedSampleData inserts the default pricing catalog and, when userEmail is
// set, demo activity for that account. Running it twice changes nothing.
func SeedSampleData(db *gorm.DB, userEmail string) (*SeedReport, error) {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "seed", time.Since(start))
	}()

	report, err := seedSampleData(db, userEmail)
	if err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "seed", "error")
		return nil, err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "seed", "success")
	return report, nil
}

func seedSampleData(db *gorm.DB, userEmail string) (*SeedReport, error) {
	report := &SeedReport{}
	for _, p := range defaultPricing {
		entry := p
		res := db.Where("name = ?", entry.Name).FirstOrCreate(&entry)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			report.CreatedPricing++
		}
	}

	email := strings.TrimSpace(strings.ToLower(userEmail))
	if email != "" {
		var cred domain.UserCredential
		if err := db.Where("email = ?", email).First(&cred).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrSeedUserNotFound, email)
			}
			return nil, err
		}
		for _, h := range sampleHistory {
			row := h
			row.UserID = cred.UserID
			res := db.Where("user_id = ? AND event_name = ? AND event_date = ?", row.UserID, row.EventName, row.EventDate).FirstOrCreate(&row)
			if res.Error != nil {
				return nil, res.Error
			}
			if res.RowsAffected > 0 {
				report.CreatedHistory++
			}
		}
		for _, msg := range sampleNotifications {
			n := domain.Notification{UserID: cred.UserID, Message: msg}
			res := db.Where("user_id = ? AND message = ?", n.UserID, n.Message).FirstOrCreate(&n)
			if res.Error != nil {
				return nil, res.Error
			}
			if res.RowsAffected > 0 {
				report.CreatedNotifications++
			}
		}
	}

	report.Noop = report.CreatedPricing == 0 && report.CreatedHistory == 0 && report.CreatedNotifications == 0
	return report, nil
}
