package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/core/validate"
	"github.com/colonyops/appraise/internal/stores"
)

// LoadSeed preloads reviews from a YAML file into the store. Entries
// failing validation are logged and skipped rather than aborting
// startup. Returns the number of records loaded.
func LoadSeed(path string, store *stores.ReviewStore) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var entries []review.Review
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	accepted := make([]review.Review, 0, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			entry.ID = review.NewID()
		}

		// Dates may be written in calendar form; store the canonical form.
		if from, err := review.CanonicalDate(entry.Period.From); err == nil {
			entry.Period.From = from
		}
		if to, err := review.CanonicalDate(entry.Period.To); err == nil {
			entry.Period.To = to
		}

		if err := validate.Record(entry); err != nil {
			log.Warn().Err(err).Int("entry", i).Msg("skipping invalid seed entry")
			continue
		}
		accepted = append(accepted, entry)
	}

	store.Seed(accepted)
	return len(accepted), nil
}
