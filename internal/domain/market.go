package domain

import (
	"fmt"
	"strings"
	"time"
)

// City is a marketplace location
type City string

const (
	CityBridgewatch  City = "Bridgewatch"
	CityFortSterling City = "Fort Sterling"
	CityLymhurst     City = "Lymhurst"
	CityMartlock     City = "Martlock"
	CityThetford     City = "Thetford"
	CityCaerleon     City = "Caerleon"
	CityBrecilien    City = "Brecilien"
	CityBlackMarket  City = "Black Market"
)

// RoyalCities are the five cities of the royal continent
var RoyalCities = []City{CityBridgewatch, CityFortSterling, CityLymhurst, CityMartlock, CityThetford}

// MarketCities are the cities with a regular player market, in scan order.
// The Black Market is excluded because it only carries buy orders.
var MarketCities = []City{
	CityBridgewatch, CityFortSterling, CityLymhurst, CityMartlock, CityThetford, CityCaerleon, CityBrecilien,
}

// AllCities includes the Black Market
var AllCities = append(append([]City{}, MarketCities...), CityBlackMarket)

// ParseCity resolves a city name case-insensitively, ignoring spaces and dashes
func ParseCity(s string) (City, error) {
	key := normalizeKey(s)
	for _, c := range AllCities {
		if normalizeKey(string(c)) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
}

func normalizeKey(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// SelectorKind discriminates between an explicit city and automatic best-city selection
type SelectorKind int

const (
	SelectAuto SelectorKind = iota
	SelectExplicit
)

// CitySelector chooses where a price is taken from.
// The zero value selects automatically.
type CitySelector struct {
	Kind SelectorKind
	City City
}

// Auto selects the best city across all configured cities
func Auto() CitySelector {
	return CitySelector{Kind: SelectAuto}
}

// InCity selects a specific city
func InCity(c City) CitySelector {
	return CitySelector{Kind: SelectExplicit, City: c}
}

// IsAuto reports whether the selector scans all cities
func (s CitySelector) IsAuto() bool {
	return s.Kind == SelectAuto
}

func (s CitySelector) String() string {
	if s.IsAuto() {
		return "auto"
	}
	return string(s.City)
}

// ParseCitySelector parses "auto" (or empty) and city names
func ParseCitySelector(s string) (CitySelector, error) {
	if key := normalizeKey(s); key == "" || key == "auto" {
		return Auto(), nil
	}
	c, err := ParseCity(s)
	if err != nil {
		return CitySelector{}, err
	}
	return InCity(c), nil
}

// MarshalText encodes the selector as "auto" or the city name
func (s CitySelector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the same forms as ParseCitySelector
func (s *CitySelector) UnmarshalText(b []byte) error {
	sel, err := ParseCitySelector(string(b))
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

// Side is the direction of a trade from the player's perspective
type Side int

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideSell {
		return "sell"
	}
	return "buy"
}

// ParseSide parses "buy" or "sell"
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	}
	return SideBuy, fmt.Errorf("%w: side %q", ErrInvalidInput, s)
}

// Item quality levels as reported by the market API
const (
	QualityAny         = 0
	QualityNormal      = 1
	QualityGood        = 2
	QualityOutstanding = 3
	QualityExcellent   = 4
	QualityMasterpiece = 5
)

// PriceQuote is one market snapshot row.
// A zero price means the market had no data, never that the item is free.
type PriceQuote struct {
	ItemID       string  `json:"item_id"`
	City         City    `json:"city"`
	Quality      int     `json:"quality"`
	SellPriceMin float64 `json:"sell_price_min"`
	SellPriceMax float64 `json:"sell_price_max"`
	BuyPriceMin  float64 `json:"buy_price_min"`
	BuyPriceMax  float64 `json:"buy_price_max"`
}

// Server is a regional game server with its own market data
type Server string

const (
	ServerWest   Server = "west"
	ServerEast   Server = "east"
	ServerEurope Server = "europe"
)

var serverAliases = map[string]Server{
	"west":     ServerWest,
	"americas": ServerWest,
	"america":  ServerWest,
	"us":       ServerWest,
	"east":     ServerEast,
	"asia":     ServerEast,
	"europe":   ServerEurope,
	"eu":       ServerEurope,
}

var serverHosts = map[Server]string{
	ServerWest:   "https://west.albion-online-data.com",
	ServerEast:   "https://east.albion-online-data.com",
	ServerEurope: "https://europe.albion-online-data.com",
}

// ParseServer accepts both naming conventions (West/East/Europe and Americas/Asia/Europe)
func ParseServer(s string) (Server, error) {
	if srv, ok := serverAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return srv, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownServer, s)
}

// BaseURL returns the market API base URL for the server
func (s Server) BaseURL() string {
	return serverHosts[s]
}

// MarketSnapshot is a complete point-in-time set of quotes from one server.
// Snapshots are replaced wholesale and never patched.
type MarketSnapshot struct {
	Server    Server       `json:"server"`
	FetchedAt time.Time    `json:"fetched_at"`
	Quotes    []PriceQuote `json:"quotes"`
}

// PricePoint is one bucket of a price history series
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	AvgPrice  float64   `json:"avg_price"`
	ItemCount int64     `json:"item_count"`
}

// PriceHistory is the history of one item in one city and quality
type PriceHistory struct {
	ItemID  string       `json:"item_id"`
	City    City         `json:"city"`
	Quality int          `json:"quality"`
	Points  []PricePoint `json:"points"`
}
