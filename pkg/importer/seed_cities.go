package importer

// seedCity is one entry in the fixed list of areas the city seeder works
// through batch by batch.
type seedCity struct {
	Name      string
	Region    string
	Latitude  float64
	Longitude float64
}

var seedCities = []seedCity{
	{Name: "Berlin", Region: "Berlin", Latitude: 52.520008, Longitude: 13.404954},
	{Name: "Hamburg", Region: "Hamburg", Latitude: 53.551086, Longitude: 9.993682},
	{Name: "München", Region: "Bayern", Latitude: 48.135125, Longitude: 11.581981},
	{Name: "Köln", Region: "Nordrhein-Westfalen", Latitude: 50.937531, Longitude: 6.960279},
	{Name: "Frankfurt am Main", Region: "Hessen", Latitude: 50.110924, Longitude: 8.682127},
	{Name: "Stuttgart", Region: "Baden-Württemberg", Latitude: 48.775845, Longitude: 9.182932},
	{Name: "Düsseldorf", Region: "Nordrhein-Westfalen", Latitude: 51.227741, Longitude: 6.773456},
	{Name: "Leipzig", Region: "Sachsen", Latitude: 51.339695, Longitude: 12.373075},
	{Name: "Dresden", Region: "Sachsen", Latitude: 51.050407, Longitude: 13.737262},
	{Name: "Hannover", Region: "Niedersachsen", Latitude: 52.375892, Longitude: 9.732010},
	{Name: "Nürnberg", Region: "Bayern", Latitude: 49.452030, Longitude: 11.076750},
	{Name: "Bremen", Region: "Bremen", Latitude: 53.079296, Longitude: 8.801694},
	{Name: "Wien", Region: "Wien", Latitude: 48.208174, Longitude: 16.373819},
	{Name: "Zürich", Region: "Zürich", Latitude: 47.376887, Longitude: 8.541694},
	{Name: "Salzburg", Region: "Salzburg", Latitude: 47.809490, Longitude: 13.055010},
}
