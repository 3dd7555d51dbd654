// Package tz resolves the site's display timezone.
package tz

import (
	"fmt"
	"strings"
	"time"

	_ "time/tzdata" // containers often ship without zoneinfo
)

// Default is the timezone articles are displayed in when none is configured.
const Default = "Europe/Paris"

// Load returns the named location, or Default when name is blank.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
