package pricing

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	// DefaultBufferMinutes is the no-bonus grace period used when a tenant has not set one.
	DefaultBufferMinutes = 10

	keyExtraControllerRate = "extraControllerRate"
	keyBufferMinutes       = "bufferMinutes"
	keyTimezone            = "timezone"
)

type RatePair struct {
	Weekday Money `json:"weekday"`
	Weekend Money `json:"weekend"`
}

func (r RatePair) For(day DayType) Money {
	if day == Weekend {
		return r.Weekend
	}
	return r.Weekday
}

// PricingConfig is a tenant's hourly rates and extras. On the wire game types
// are top-level keys next to extraControllerRate, bufferMinutes and timezone.
type PricingConfig struct {
	Rates               map[GameType]RatePair
	ExtraControllerRate Money
	BufferMinutes       *int
	Timezone            string
}

func (c PricingConfig) Validate() error {
	for gt, pair := range c.Rates {
		if !gt.IsCanonical() {
			return fmt.Errorf("%w: %q", ErrUnknownGameType, gt)
		}
		if pair.Weekday.IsNegative() || pair.Weekend.IsNegative() {
			return fmt.Errorf("%w: %s", ErrNegativeRate, gt)
		}
	}
	if c.ExtraControllerRate.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeRate, keyExtraControllerRate)
	}
	if c.BufferMinutes != nil && *c.BufferMinutes < 0 {
		return ErrNegativeBuffer
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
		}
	}
	return nil
}

func (c PricingConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Rates)+3)
	for gt, pair := range c.Rates {
		out[string(gt)] = pair
	}
	out[keyExtraControllerRate] = c.ExtraControllerRate
	if c.BufferMinutes != nil {
		out[keyBufferMinutes] = *c.BufferMinutes
	}
	if c.Timezone != "" {
		out[keyTimezone] = c.Timezone
	}
	return json.Marshal(out)
}

func (c *PricingConfig) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed := PricingConfig{Rates: make(map[GameType]RatePair)}
	games := make(map[string]json.RawMessage)
	for key, value := range raw {
		switch key {
		case keyExtraControllerRate:
			if err := json.Unmarshal(value, &parsed.ExtraControllerRate); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		case keyBufferMinutes:
			var minutes int
			if err := json.Unmarshal(value, &minutes); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			parsed.BufferMinutes = &minutes
		case keyTimezone:
			if err := json.Unmarshal(value, &parsed.Timezone); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		default:
			games[key] = value
		}
	}

	err := eachGameKey(games, func(gt GameType, value json.RawMessage) error {
		var pair rawRatePair
		if err := json.Unmarshal(value, &pair); err != nil {
			return err
		}
		if pair.Weekday == nil || pair.Weekend == nil {
			return ErrMissingDayRates
		}
		parsed.Rates[gt] = RatePair{Weekday: *pair.Weekday, Weekend: *pair.Weekend}
		return nil
	})
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

type rawRatePair struct {
	Weekday *Money `json:"weekday"`
	Weekend *Money `json:"weekend"`
}

// BonusTiers are free-time grants (seconds) unlocked at 1, 2 and 3 hours played.
// Only the highest unlocked tier applies.
type BonusTiers struct {
	OneHour    int64 `json:"oneHour"`
	TwoHours   int64 `json:"twoHours"`
	ThreeHours int64 `json:"threeHours"`
}

// Disabled reports the documented "bonus off" switch: every tier is zero.
func (t BonusTiers) Disabled() bool {
	return t.OneHour == 0 && t.TwoHours == 0 && t.ThreeHours == 0
}

func (t BonusTiers) validate() error {
	if t.OneHour < 0 || t.TwoHours < 0 || t.ThreeHours < 0 {
		return ErrNegativeBonus
	}
	return nil
}

type DayBonus struct {
	Weekday BonusTiers `json:"weekday"`
	Weekend BonusTiers `json:"weekend"`
}

func (d DayBonus) For(day DayType) BonusTiers {
	if day == Weekend {
		return d.Weekend
	}
	return d.Weekday
}

type BonusConfig map[GameType]DayBonus

func (c BonusConfig) Validate() error {
	for gt, days := range c {
		if !gt.IsCanonical() {
			return fmt.Errorf("%w: %q", ErrUnknownGameType, gt)
		}
		if err := days.Weekday.validate(); err != nil {
			return fmt.Errorf("%s weekday: %w", gt, err)
		}
		if err := days.Weekend.validate(); err != nil {
			return fmt.Errorf("%s weekend: %w", gt, err)
		}
	}
	return nil
}

func (c *BonusConfig) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed := make(BonusConfig, len(raw))
	err := eachGameKey(raw, func(gt GameType, value json.RawMessage) error {
		var days DayBonus
		if err := json.Unmarshal(value, &days); err != nil {
			return err
		}
		parsed[gt] = days
		return nil
	})
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// eachGameKey normalizes legacy game-type keys. Aliases are applied first so a
// canonical key present in the same document always wins.
func eachGameKey(entries map[string]json.RawMessage, fn func(GameType, json.RawMessage) error) error {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := GameType(keys[i]).IsCanonical(), GameType(keys[j]).IsCanonical()
		if ci != cj {
			return cj
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		gt, ok := NormalizeGameType(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidConfigKey, key)
		}
		if err := fn(gt, entries[key]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func DefaultPricingConfig() PricingConfig {
	buffer := DefaultBufferMinutes
	return PricingConfig{
		Rates: map[GameType]RatePair{
			GamePlaystation:   {Weekday: MoneyFromInt(150), Weekend: MoneyFromInt(200)},
			GameSteeringWheel: {Weekday: MoneyFromInt(150), Weekend: MoneyFromInt(200)},
			GameSystem:        {Weekday: MoneyFromInt(100), Weekend: MoneyFromInt(120)},
		},
		ExtraControllerRate: MoneyFromInt(50),
		BufferMinutes:       &buffer,
	}
}

func DefaultBonusConfig() BonusConfig {
	standard := BonusTiers{OneHour: 900, TwoHours: 1800, ThreeHours: 3600}
	return BonusConfig{
		GamePlaystation:   {Weekday: standard, Weekend: standard},
		GameSteeringWheel: {},
		GameSystem:        {},
	}
}
