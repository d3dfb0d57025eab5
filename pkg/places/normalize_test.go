package places

import (
	"testing"

	"dinemap/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMapPriceLevel(t *testing.T) {
	assert.Equal(t, "", MapPriceLevel(nil))
	assert.Equal(t, "€", MapPriceLevel(intPtr(0)))
	assert.Equal(t, "€", MapPriceLevel(intPtr(1)))
	assert.Equal(t, "€€", MapPriceLevel(intPtr(2)))
	assert.Equal(t, "€€€", MapPriceLevel(intPtr(3)))
	assert.Equal(t, "€€€€", MapPriceLevel(intPtr(4)))
	assert.Equal(t, "", MapPriceLevel(intPtr(7)))
}

func TestParseOpeningHours(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		hours := ParseOpeningHours([]string{
			"Monday: 9:00 AM – 5:00 PM",
			"Tuesday: Closed",
			"Wednesday: 11:30 AM – 10:00 PM",
		})

		assert.Equal(t, domain.DayHours{Open: "09:00", Close: "17:00"}, hours["monday"])
		assert.Equal(t, domain.DayHours{Open: "11:30", Close: "22:00"}, hours["wednesday"])

		// Closed days are omitted, absence means unknown, not closed.
		_, ok := hours["tuesday"]
		assert.False(t, ok)
	})

	t.Run("german", func(t *testing.T) {
		hours := ParseOpeningHours([]string{
			"Montag: 09:00–17:00",
			"Dienstag: Geschlossen",
			"Sonntag: 10:00–14:00",
		})

		assert.Equal(t, domain.DayHours{Open: "09:00", Close: "17:00"}, hours["monday"])
		assert.Equal(t, domain.DayHours{Open: "10:00", Close: "14:00"}, hours["sunday"])
		_, ok := hours["tuesday"]
		assert.False(t, ok)
	})

	t.Run("accented day names", func(t *testing.T) {
		hours := ParseOpeningHours([]string{
			"sábado: 12:00–23:00",
			"Miércoles: 12:00–22:00",
		})

		assert.Equal(t, domain.DayHours{Open: "12:00", Close: "23:00"}, hours["saturday"])
		assert.Equal(t, domain.DayHours{Open: "12:00", Close: "22:00"}, hours["wednesday"])
	})

	t.Run("midnight and noon edge cases", func(t *testing.T) {
		hours := ParseOpeningHours([]string{
			"Friday: 12:00 AM – 12:30 PM",
		})

		assert.Equal(t, domain.DayHours{Open: "00:00", Close: "12:30"}, hours["friday"])
	})

	t.Run("unparseable lines skipped", func(t *testing.T) {
		hours := ParseOpeningHours([]string{
			"Monday: Open 24 hours",
			"not a weekday line",
			"Funday: 09:00–17:00",
		})

		assert.Empty(t, hours)
	})
}

func TestExtractCityInfo(t *testing.T) {
	t.Run("locality with region", func(t *testing.T) {
		info := ExtractCityInfo([]AddressComponent{
			{LongName: "10115", Types: []string{"postal_code"}},
			{LongName: "Berlin", Types: []string{"locality", "political"}},
			{LongName: "Berlin", Types: []string{"administrative_area_level_1"}},
		}, 52.52, 13.405)

		require.NotNil(t, info)
		assert.Equal(t, "Berlin", info.Name)
		assert.Equal(t, "Berlin", info.Region)
		assert.Equal(t, 52.52, info.Latitude)
	})

	t.Run("postal town fallback", func(t *testing.T) {
		info := ExtractCityInfo([]AddressComponent{
			{LongName: "Uppsala", Types: []string{"postal_town"}},
		}, 59.86, 17.64)

		require.NotNil(t, info)
		assert.Equal(t, "Uppsala", info.Name)
	})

	t.Run("no locality", func(t *testing.T) {
		info := ExtractCityInfo([]AddressComponent{
			{LongName: "Bavaria", Types: []string{"administrative_area_level_1"}},
		}, 48.1, 11.5)

		assert.Nil(t, info)
	})
}

func TestExtractPostalCode(t *testing.T) {
	components := []AddressComponent{
		{LongName: "Berlin", Types: []string{"locality"}},
		{LongName: "10115", Types: []string{"postal_code"}},
	}
	assert.Equal(t, "10115", ExtractPostalCode(components))
	assert.Equal(t, "", ExtractPostalCode(components[:1]))
}

func TestCuisinesForTypes(t *testing.T) {
	cuisines := CuisinesForTypes([]string{
		"pizza_restaurant", "italian_restaurant", "point_of_interest", "cafe",
	})

	// pizza and italian map to the same slug; dedup keeps tag order.
	assert.Equal(t, []string{"italian", "cafe"}, cuisines)
	assert.Empty(t, CuisinesForTypes([]string{"establishment", "food"}))
}
