package roomsim

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Rooms []Room `yaml:"rooms" validate:"dive"`
}

// LoadSeed reads the room fixture file.
func LoadSeed(path string) ([]Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]Room, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := validator.New().Struct(seed); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	seen := make(map[string]bool, len(seed.Rooms))
	for _, room := range seed.Rooms {
		key := NormalizeRoomNumber(room.Number)
		if seen[key] {
			return nil, fmt.Errorf("invalid seed file: room %q listed twice", room.Number)
		}
		seen[key] = true
	}
	return seed.Rooms, nil
}
