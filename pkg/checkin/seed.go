package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/clubops/club-manager/pkg/model"
	"gopkg.in/yaml.v3"
)

type rosterSeed struct {
	EventID   uint `yaml:"eventId"`
	Attendees []struct {
		Name       string `yaml:"name"`
		Email      string `yaml:"email"`
		TicketType string `yaml:"ticketType"`
	} `yaml:"attendees"`
}

// SeedRosters loads attendee rosters from a YAML file. Events that already
// have a roster are skipped so reseeding on restart is harmless.
func SeedRosters(ctx context.Context, logger *slog.Logger, path string, repository attendeeRepository) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster seed file %q: %v", path, err)
	}

	var seeds []rosterSeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse roster seed file %q: %v", path, err)
	}

	for _, seed := range seeds {
		existing, err := repository.findAll(ctx, seed.EventID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			logger.InfoContext(ctx, "Skipping roster seed, event already has attendees", "eventId", seed.EventID)
			continue
		}

		for _, entry := range seed.Attendees {
			ticketType := model.TicketType(entry.TicketType)
			if ticketType == "" {
				ticketType = model.TicketMember
			}
			if !ticketType.IsValid() {
				return fmt.Errorf("unknown ticket type %q in roster seed for event %d", entry.TicketType, seed.EventID)
			}

			attendee := &model.Attendee{
				EventID:    seed.EventID,
				Name:       entry.Name,
				Email:      entry.Email,
				TicketType: ticketType,
			}
			if err := repository.createAttendee(ctx, attendee); err != nil {
				return err
			}
		}
		logger.InfoContext(ctx, "Seeded roster", "eventId", seed.EventID, "attendees", len(seed.Attendees))
	}

	return nil
}
