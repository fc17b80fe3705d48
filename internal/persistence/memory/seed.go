package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"example.com/activities/internal/domain"
)

// DefaultSeed returns the built-in activity roster the service starts with.
func DefaultSeed() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice basketball skills and compete against other schools",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Practice tennis and play friendly matches on the school courts",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Rehearse and perform plays for the school community",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"ella@mergington.edu", "noah@mergington.edu"},
		},
	}
}

type seedRecord struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// LoadSeedFile reads a JSON object mapping activity name to its details, in
// the same shape the list endpoint serves. Activities come back sorted by name.
func LoadSeedFile(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	records := make(map[string]seedRecord)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.Activity, 0, len(records))
	for _, name := range names {
		record := records[name]
		if record.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed activity %q: max_participants must be positive", name)
		}
		participants := record.Participants
		if participants == nil {
			participants = []string{}
		}
		out = append(out, domain.Activity{
			Name:            name,
			Description:     record.Description,
			Schedule:        record.Schedule,
			MaxParticipants: record.MaxParticipants,
			Participants:    participants,
		})
	}
	return out, nil
}
