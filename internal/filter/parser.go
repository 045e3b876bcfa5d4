package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownField is returned by Parse for an unsupported criterion.
var ErrUnknownField = errors.New("unknown filter field")

var (
	yearRangeRe  = regexp.MustCompile(`^(\d{4})?\s*-\s*(\d{4})?$`)
	yearSingleRe = regexp.MustCompile(`^(\d{4})$`)
	decadeRe     = regexp.MustCompile(`^(\d{3})0s$`)
)

// Parse builds a filter from "key=value" criteria separated by ";".
// Values of list criteria are separated by ",".
//
// Supported keys: name, location, continent, type, batch, category,
// established (see ParseYearRange), incomplete, igolf.
//
//	continent=Europe,Asia; type=links; established=1890-1930; igolf=false
func Parse(input string) (*Filter, error) {
	f := NewFilter()
	input = strings.TrimSpace(input)
	if input == "" {
		return f, nil
	}

	for _, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid criterion %q: expected key=value", part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			f.Names = append(f.Names, splitList(value)...)
		case "location":
			f.Locations = append(f.Locations, splitList(value)...)
		case "continent":
			f.Continents = append(f.Continents, splitList(value)...)
		case "type":
			f.Types = append(f.Types, splitList(value)...)
		case "batch":
			f.Batches = append(f.Batches, splitList(value)...)
		case "category":
			f.Categories = append(f.Categories, splitList(value)...)
		case "established":
			from, to, err := ParseYearRange(value)
			if err != nil {
				return nil, err
			}
			f.EstablishedFrom, f.EstablishedTo = from, to
		case "incomplete":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid incomplete value %q: %w", value, err)
			}
			f.IncompleteBlurb = b
		case "igolf":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid igolf value %q: %w", value, err)
			}
			f.ExcludeIgolf = !b
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}

	return f, nil
}

func splitList(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ParseYearRange parses a founding year range.
//
// Supported formats:
//   - "1921" - a single year
//   - "1890-1930" - inclusive range
//   - "1890-" or "-1930" - open range
//   - "1920s" - a decade
//
// Returns (from, to, error); zero means open.
func ParseYearRange(input string) (int, int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, 0, fmt.Errorf("year range cannot be empty")
	}

	if m := yearSingleRe.FindStringSubmatch(input); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year, year, nil
	}

	if m := decadeRe.FindStringSubmatch(input); m != nil {
		decade, _ := strconv.Atoi(m[1])
		return decade * 10, decade*10 + 9, nil
	}

	if m := yearRangeRe.FindStringSubmatch(input); m != nil {
		if m[1] == "" && m[2] == "" {
			return 0, 0, fmt.Errorf("year range needs at least one year")
		}
		var from, to int
		if m[1] != "" {
			from, _ = strconv.Atoi(m[1])
		}
		if m[2] != "" {
			to, _ = strconv.Atoi(m[2])
		}
		if from != 0 && to != 0 && from > to {
			return 0, 0, fmt.Errorf("start year must not be after end year")
		}
		return from, to, nil
	}

	return 0, 0, fmt.Errorf("invalid year range format. Use '1921', '1890-1930', '1890-', '-1930' or '1920s'")
}
