// ABOUTME: ResolvedLocation model and the curated coordinate tables the
// ABOUTME: location resolver consults before and after live geocoding
package domain

import "strings"

// ResolvedLocation is the output of location resolution. Latitude and
// Longitude are nullable together: both nil or both set, never one of each.
type ResolvedLocation struct {
	Latitude    *float64
	Longitude   *float64
	DisplayName string
}

// NewResolvedLocation builds a location with both coordinates set.
func NewResolvedLocation(lat, lon float64, displayName string) ResolvedLocation {
	return ResolvedLocation{Latitude: &lat, Longitude: &lon, DisplayName: displayName}
}

// HasCoordinates reports whether the location carries a coordinate pair.
func (l ResolvedLocation) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// GlobalDisplayName marks stories with no single place on the map.
const GlobalDisplayName = "Global"

// GlobalLocation returns the fixed marker used for worldwide stories.
func GlobalLocation() ResolvedLocation {
	return NewResolvedLocation(0, 0, GlobalDisplayName)
}

type curatedPoint struct {
	lat float64
	lon float64
}

// regionCenters maps multi-word macro-region names to curated center points.
// Curated lookup takes priority over live geocoding for these: geocoders
// handle region names unreliably.
var regionCenters = map[string]curatedPoint{
	"middle east":        {29.3, 42.5},
	"eastern europe":     {50.0, 25.0},
	"western europe":     {48.7, 5.2},
	"southeast asia":     {7.3, 105.8},
	"central asia":       {45.4, 68.4},
	"south asia":         {22.0, 79.0},
	"east asia":          {35.0, 110.0},
	"north africa":       {28.2, 11.0},
	"sub-saharan africa": {0.3, 21.5},
	"horn of africa":     {8.5, 44.3},
	"west africa":        {11.2, -3.5},
	"latin america":      {-13.5, -61.0},
	"south america":      {-14.6, -57.6},
	"central america":    {12.8, -85.6},
	"north america":      {46.1, -100.6},
	"the balkans":        {42.5, 21.0},
	"scandinavia":        {62.8, 15.2},
	"the caucasus":       {42.3, 44.4},
	"the caribbean":      {17.9, -70.2},
	"the pacific":        {-8.5, -174.0},
}

// cityCenters is the fallback table consulted when live geocoding yields
// nothing. Matched by substring.
var cityCenters = map[string]curatedPoint{
	"washington":     {38.9072, -77.0369},
	"new york":       {40.7128, -74.0060},
	"london":         {51.5074, -0.1278},
	"paris":          {48.8566, 2.3522},
	"berlin":         {52.5200, 13.4050},
	"brussels":       {50.8503, 4.3517},
	"geneva":         {46.2044, 6.1432},
	"moscow":         {55.7558, 37.6173},
	"kyiv":           {50.4501, 30.5234},
	"beijing":        {39.9042, 116.4074},
	"shanghai":       {31.2304, 121.4737},
	"tokyo":          {35.6762, 139.6503},
	"seoul":          {37.5665, 126.9780},
	"delhi":          {28.7041, 77.1025},
	"jerusalem":      {31.7683, 35.2137},
	"tel aviv":       {32.0853, 34.7818},
	"tehran":         {35.6892, 51.3890},
	"baghdad":        {33.3152, 44.3661},
	"cairo":          {30.0444, 31.2357},
	"istanbul":       {41.0082, 28.9784},
	"rome":           {41.9028, 12.4964},
	"madrid":         {40.4168, -3.7038},
	"vienna":         {48.2082, 16.3738},
	"warsaw":         {52.2297, 21.0122},
	"mexico city":    {19.4326, -99.1332},
	"sao paulo":      {-23.5505, -46.6333},
	"buenos aires":   {-34.6037, -58.3816},
	"johannesburg":   {-26.2041, 28.0473},
	"nairobi":        {-1.2921, 36.8219},
	"lagos":          {6.5244, 3.3792},
	"sydney":         {-33.8688, 151.2093},
	"singapore":      {1.3521, 103.8198},
	"hong kong":      {22.3193, 114.1694},
	"san francisco":  {37.7749, -122.4194},
	"los angeles":    {34.0522, -118.2437},
	"chicago":        {41.8781, -87.6298},
	"united nations": {40.7489, -73.9680},
}

// countryCenters resolves country names derived from article text when no
// narrower place could be located.
var countryCenters = map[string]curatedPoint{
	"united states":  {39.8, -98.6},
	"united kingdom": {54.6, -2.9},
	"germany":        {51.2, 10.4},
	"france":         {46.6, 2.5},
	"italy":          {42.8, 12.6},
	"spain":          {40.2, -3.6},
	"poland":         {52.1, 19.4},
	"ukraine":        {49.0, 31.4},
	"russia":         {61.5, 99.0},
	"china":          {35.9, 104.2},
	"japan":          {36.6, 138.0},
	"south korea":    {36.4, 127.8},
	"india":          {22.9, 79.6},
	"pakistan":       {29.9, 69.1},
	"iran":           {32.6, 54.3},
	"iraq":           {33.1, 43.7},
	"israel":         {31.2, 34.9},
	"turkey":         {39.0, 35.3},
	"egypt":          {26.6, 29.8},
	"saudi arabia":   {24.2, 44.5},
	"nigeria":        {9.6, 8.1},
	"south africa":   {-29.0, 25.1},
	"kenya":          {0.5, 37.9},
	"ethiopia":       {8.6, 39.6},
	"brazil":         {-10.8, -53.1},
	"argentina":      {-35.2, -65.2},
	"mexico":         {23.9, -102.5},
	"canada":         {61.4, -98.3},
	"australia":      {-25.7, 134.5},
	"indonesia":      {-2.2, 117.4},
	"netherlands":    {52.2, 5.6},
	"switzerland":    {46.8, 8.2},
	"sweden":         {62.8, 16.7},
	"norway":         {64.6, 12.7},
	"greece":         {39.1, 22.9},
	"taiwan":         {23.8, 121.0},
	"vietnam":        {16.6, 106.3},
	"philippines":    {12.9, 122.9},
	"afghanistan":    {33.8, 66.0},
	"syria":          {35.0, 38.5},
	"yemen":          {15.9, 47.5},
	"sudan":          {15.9, 30.3},
	"venezuela":      {7.1, -66.2},
	"colombia":       {3.9, -73.1},
}

// LookupRegionCenter matches a place name against the curated macro-region
// table, exactly or as a clear prefix/suffix.
func LookupRegionCenter(place string) (ResolvedLocation, bool) {
	normalized := strings.ToLower(strings.TrimSpace(place))
	if normalized == "" {
		return ResolvedLocation{}, false
	}

	for region, point := range regionCenters {
		if normalized == region ||
			strings.HasPrefix(normalized, region+" ") ||
			strings.HasSuffix(normalized, " "+region) {
			return NewResolvedLocation(point.lat, point.lon, titleCase(region)), true
		}
	}

	return ResolvedLocation{}, false
}

// LookupCityCenter matches a place name against the curated city table by
// substring in either direction.
func LookupCityCenter(place string) (ResolvedLocation, bool) {
	normalized := strings.ToLower(strings.TrimSpace(place))
	if normalized == "" {
		return ResolvedLocation{}, false
	}

	for city, point := range cityCenters {
		if strings.Contains(normalized, city) || strings.Contains(city, normalized) {
			return NewResolvedLocation(point.lat, point.lon, titleCase(city)), true
		}
	}

	return ResolvedLocation{}, false
}

// LookupCountryCenter matches a country name against the curated country table.
func LookupCountryCenter(country string) (ResolvedLocation, bool) {
	normalized := strings.ToLower(strings.TrimSpace(country))
	if normalized == "" {
		return ResolvedLocation{}, false
	}

	if point, ok := countryCenters[normalized]; ok {
		return NewResolvedLocation(point.lat, point.lon, titleCase(normalized)), true
	}

	for country, point := range countryCenters {
		if strings.Contains(normalized, country) {
			return NewResolvedLocation(point.lat, point.lon, titleCase(country)), true
		}
	}

	return ResolvedLocation{}, false
}

// ContainsGlobalLanguage reports whether text signals a worldwide story.
func ContainsGlobalLanguage(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range []string{"worldwide", "around the world", "across the globe", "global"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "the" && i > 0 {
			continue
		}
		if w == "of" || w == "and" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
