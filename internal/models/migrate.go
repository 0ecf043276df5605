package models

import (
	"fmt"

	"gorm.io/gorm"
)

// partialIndexes are uniqueness rules scoped to a status. Both postgres and
// sqlite accept this syntax.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_club_athletes_active ON club_athletes (club_id, athlete_id) WHERE status = 'active'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_transfers_pending_athlete ON transfers (athlete_id) WHERE status = 'pending'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contacts_emergency_athlete ON contacts (athlete_id) WHERE is_emergency = true`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_clubs_active_name ON clubs (name) WHERE status = 'active'`,
}

// All lists every table in dependency order.
func All() []interface{} {
	return []interface{}{
		&Permission{}, &Role{}, &User{},
		&Club{}, &Athlete{}, &ClubAthlete{}, &Contact{}, &Transfer{},
		&Event{}, &Enrollment{}, &Match{}, &Result{}, &MatchStatistic{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create partial index: %w", err)
		}
	}
	return nil
}
