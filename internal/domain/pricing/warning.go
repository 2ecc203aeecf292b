package pricing

import "fmt"

type WarningCode string

const (
	// CodeUnknownGameType: the requested game type is not one of the canonical values.
	CodeUnknownGameType WarningCode = "UNKNOWN_GAME_TYPE"
	// CodeConfigurationMissing: the game type has no entry for a lookup and System defaults were used.
	CodeConfigurationMissing WarningCode = "CONFIGURATION_MISSING"
)

// Warning is a structured, non-fatal notice returned alongside a computed line.
type Warning struct {
	Code     WarningCode `json:"code"`
	GameType string      `json:"gameType"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
}

func UnknownGameTypeWarning(raw string) Warning {
	return Warning{
		Code:     CodeUnknownGameType,
		GameType: raw,
		Message:  fmt.Sprintf("game type %q is not recognized; billed as %s", raw, GameSystem),
	}
}

func ConfigurationMissingWarning(gameType GameType, field string) Warning {
	return Warning{
		Code:     CodeConfigurationMissing,
		GameType: gameType.String(),
		Field:    field,
		Message:  fmt.Sprintf("no %s configured for %s; using %s defaults", field, gameType, GameSystem),
	}
}
