package content

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadFile reads a JSON document of configurations keyed by career path and
// returns the default library with those entries replaced.
func LoadFile(path string) (lib *Library, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return lib, err
	}

	var overrides map[CareerPath]Configuration
	err = json.Unmarshal(fileData, &overrides)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse content JSON: %s", path)
		return lib, err
	}

	lib = Default()
	for key, cfg := range overrides {
		if !key.Valid() {
			err = errors.Errorf("unknown career path %q", key)
			return nil, err
		}
		err = cfg.Validate()
		if err != nil {
			err = errors.Wrapf(err, "configuration %s", key)
			return nil, err
		}
		lib.configs[key] = cfg.clone()
	}

	return lib, err
}

// Valid reports whether key is one of the known career paths.
func (key CareerPath) Valid() bool {
	switch key {
	case SoftwareEngineer, ProjectManager, AIEngineer:
		return true
	}
	return false
}

// Validate checks the fields every configuration must supply.
func (c *Configuration) Validate() (err error) {
	if strings.TrimSpace(c.Hero.Name) == "" {
		err = errors.New("hero name is required")
		return err
	}
	if strings.TrimSpace(c.About) == "" {
		err = errors.New("about is required")
		return err
	}
	if len(c.Skills) == 0 {
		err = errors.New("at least one skill is required")
		return err
	}
	for i, e := range c.Experience {
		if e.Title == "" {
			err = errors.Errorf("experience at index %d missing title", i)
			return err
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			err = errors.Errorf("project at index %d missing title", i)
			return err
		}
	}
	return err
}
