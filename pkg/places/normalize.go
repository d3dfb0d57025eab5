package places

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dinemap/domain"
)

// MapPriceLevel converts the API's 0-4 ordinal price level to the directory's
// four-tier scale. Levels 0 and 1 both collapse to the cheapest tier; a nil
// level stays unmapped.
func MapPriceLevel(level *int) string {
	if level == nil {
		return ""
	}
	switch *level {
	case 0, 1:
		return "€"
	case 2:
		return "€€"
	case 3:
		return "€€€"
	case 4:
		return "€€€€"
	default:
		return ""
	}
}

// weekdayNames maps localized day names (as emitted by the API's weekday_text,
// including accented variants) to the canonical lowercase English key.
var weekdayNames = map[string]string{
	"monday": "monday", "montag": "monday", "lundi": "monday", "lunes": "monday", "lunedì": "monday",
	"tuesday": "tuesday", "dienstag": "tuesday", "mardi": "tuesday", "martes": "tuesday", "martedì": "tuesday",
	"wednesday": "wednesday", "mittwoch": "wednesday", "mercredi": "wednesday", "miércoles": "wednesday", "mercoledì": "wednesday",
	"thursday": "thursday", "donnerstag": "thursday", "jeudi": "thursday", "jueves": "thursday", "giovedì": "thursday",
	"friday": "friday", "freitag": "friday", "vendredi": "friday", "viernes": "friday", "venerdì": "friday",
	"saturday": "saturday", "samstag": "saturday", "samedi": "saturday", "sábado": "saturday", "sabato": "saturday",
	"sunday": "sunday", "sonntag": "sunday", "dimanche": "sunday", "domingo": "sunday", "domenica": "sunday",
}

var closedKeywords = []string{"closed", "geschlossen", "fermé", "cerrado", "chiuso"}

var timePattern = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*(AM|PM|am|pm)?`)

// ParseOpeningHours converts weekday_text lines ("Monday: 09:00–17:00") into
// per-day open/close pairs. Lines marked closed are omitted entirely: a day
// absent from the result means "hours unknown", not "closed" — downstream
// consumers rely on that distinction, inherited from the source format.
func ParseOpeningHours(weekdayText []string) domain.OpeningHours {
	hours := domain.OpeningHours{}

	for _, line := range weekdayText {
		day, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		key, ok := weekdayNames[strings.ToLower(strings.TrimSpace(day))]
		if !ok {
			continue
		}

		rest = strings.TrimSpace(rest)
		if isClosedLine(rest) {
			continue
		}

		matches := timePattern.FindAllStringSubmatch(rest, 2)
		if len(matches) < 2 {
			continue
		}

		open := normalizeTime(matches[0])
		close := normalizeTime(matches[1])
		if open == "" || close == "" {
			continue
		}

		hours[key] = domain.DayHours{Open: open, Close: close}
	}

	return hours
}

func isClosedLine(s string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range closedKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func normalizeTime(match []string) string {
	hour, err := strconv.Atoi(match[1])
	if err != nil || hour > 23 {
		return ""
	}

	switch strings.ToUpper(match[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%s", hour, match[2])
}

// CityInfo is the geographic grouping derived from a place's address
// components.
type CityInfo struct {
	Name      string
	Region    string
	Latitude  float64
	Longitude float64
}

// ExtractCityInfo scans address components for a locality-level name and the
// top-level administrative region. Returns nil when no locality is present;
// the caller must skip the record rather than guess.
func ExtractCityInfo(components []AddressComponent, lat, lng float64) *CityInfo {
	var locality, region string

	for _, component := range components {
		for _, t := range component.Types {
			switch t {
			case "locality", "postal_town":
				if locality == "" {
					locality = component.LongName
				}
			case "administrative_area_level_1":
				if region == "" {
					region = component.LongName
				}
			}
		}
	}

	if locality == "" {
		return nil
	}

	return &CityInfo{Name: locality, Region: region, Latitude: lat, Longitude: lng}
}

// ExtractPostalCode returns the postal_code component, or "" when absent.
func ExtractPostalCode(components []AddressComponent) string {
	for _, component := range components {
		for _, t := range component.Types {
			if t == "postal_code" {
				return component.LongName
			}
		}
	}
	return ""
}
