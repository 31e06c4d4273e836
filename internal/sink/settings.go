package sink

import (
	"fmt"
	"strconv"
	"time"
)

// settings is the flat key/value body of a sink block.
type settings map[string]string

func (s settings) required(kind, key string) (string, error) {
	v := s[key]
	if v == "" {
		return "", fmt.Errorf("%s sink: %s is required", kind, key)
	}
	return v, nil
}

func (s settings) get(key, def string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return def
}

func (s settings) integer(kind, key string, def int) (int, error) {
	v, ok := s[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s sink: %s must be an integer, got %q", kind, key, v)
	}
	return n, nil
}

func (s settings) duration(kind, key string, def time.Duration) (time.Duration, error) {
	v, ok := s[key]
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s sink: invalid %s %q: %w", kind, key, v, err)
	}
	return d, nil
}
