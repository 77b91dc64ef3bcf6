package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vanshika/finsight/backend/internal/service"
)

// ErrEmptyFile is returned when a profile file holds no profiles.
var ErrEmptyFile = errors.New("profile file is empty")

// ReadProfiles loads a profile file. The file may hold a list of profiles, a
// dataset written by WriteDataset, or a single profile object.
func ReadProfiles(path string) ([]service.OwnedProfileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	unmarshal := json.Unmarshal
	if FormatFromPath(path) == FormatYAML {
		unmarshal = yaml.Unmarshal
	}

	profiles, err := decodeProfiles(data, unmarshal)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return profiles, nil
}

func decodeProfiles(data []byte, unmarshal func([]byte, any) error) ([]service.OwnedProfileInput, error) {
	var list []service.OwnedProfileInput
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var dataset Dataset
	if err := unmarshal(data, &dataset); err == nil && len(dataset.Profiles) > 0 {
		return dataset.Profiles, nil
	}

	var single service.OwnedProfileInput
	if err := unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []service.OwnedProfileInput{single}, nil
}
