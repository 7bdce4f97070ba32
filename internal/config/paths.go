package config

import (
	"fmt"
	"strings"
)

// Paths maps a game ID to the config file it should load. The empty key
// holds a path given without a game prefix.
type Paths map[string]string

// ParsePaths reads --config values of the form "bird=path.yaml". A value
// whose prefix is not a known game is taken as a bare path, so Windows
// drive letters and paths containing '=' still work.
func ParsePaths(values []string) (Paths, error) {
	paths := Paths{}
	for _, v := range values {
		key, path := "", v
		if id, rest, ok := strings.Cut(v, "="); ok && knownGame(id) {
			key, path = id, rest
		}
		if path == "" {
			return nil, fmt.Errorf("%w: empty config path in %q", ErrInvalid, v)
		}
		if prev, dup := paths[key]; dup && prev != path {
			if key == "" {
				return nil, fmt.Errorf("%w: more than one bare config path", ErrInvalid)
			}
			return nil, fmt.Errorf("%w: config for %s given twice", ErrInvalid, key)
		}
		paths[key] = path
	}
	return paths, nil
}

// For returns the path for a game, falling back to the bare path.
func (p Paths) For(gameID string) string {
	if path, ok := p[gameID]; ok {
		return path
	}
	return p[""]
}

// Bare reports whether a path without a game prefix was given.
func (p Paths) Bare() bool {
	_, ok := p[""]
	return ok
}

func knownGame(id string) bool {
	return id == BirdID || id == InvadersID
}
