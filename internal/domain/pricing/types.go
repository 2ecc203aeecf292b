package pricing

import (
	"errors"
	"strings"
)

var (
	ErrNegativeRate     = errors.New("rate cannot be negative")
	ErrNegativeBuffer   = errors.New("buffer minutes cannot be negative")
	ErrNegativeBonus    = errors.New("bonus seconds cannot be negative")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrUnknownGameType  = errors.New("unknown game type")
	ErrInvalidMoney     = errors.New("invalid money amount")
	ErrMissingDayRates  = errors.New("game type requires both weekday and weekend rates")
	ErrInvalidConfigKey = errors.New("invalid configuration key")
)

type GameType string

const (
	GamePlaystation   GameType = "Playstation"
	GameSteeringWheel GameType = "SteeringWheel"
	GameSystem        GameType = "System"
)

// CanonicalGameTypes lists the game types a tenant can price, in display order.
var CanonicalGameTypes = []GameType{GamePlaystation, GameSteeringWheel, GameSystem}

var gameTypeAliases = map[string]GameType{
	"playstation":   GamePlaystation,
	"ps":            GamePlaystation,
	"ps4":           GamePlaystation,
	"ps5":           GamePlaystation,
	"steeringwheel": GameSteeringWheel,
	"wheel":         GameSteeringWheel,
	"system":        GameSystem,
	"desktop":       GameSystem,
	"pc":            GameSystem,
}

func (g GameType) String() string {
	return string(g)
}

func (g GameType) IsCanonical() bool {
	switch g {
	case GamePlaystation, GameSteeringWheel, GameSystem:
		return true
	default:
		return false
	}
}

// Normalize maps legacy spellings (PS4, PS5, PlayStation, Desktop, ...) to a
// canonical game type. Unrecognized values resolve to System with ok == false.
func (g GameType) Normalize() (GameType, bool) {
	return NormalizeGameType(string(g))
}

func NormalizeGameType(s string) (GameType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	if gt, ok := gameTypeAliases[key]; ok {
		return gt, true
	}
	return GameSystem, false
}

type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

func (d DayType) String() string {
	return string(d)
}

func (d DayType) IsValid() bool {
	return d == Weekday || d == Weekend
}
