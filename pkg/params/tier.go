package params

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MinTier and MaxTier bound the closed MTF tier domain used by the model.
const (
	MinTier = 1
	MaxTier = 3
)

// TierTable maps tiers 1..3 to a coefficient. Index 0 holds tier 1.
type TierTable [MaxTier]float64

// Tiers builds a table from the tier 1, 2 and 3 values.
func Tiers(t1, t2, t3 float64) TierTable {
	return TierTable{t1, t2, t3}
}

// At returns the coefficient for tier. Tiers outside 1..3 are clamped.
func (t TierTable) At(tier int) float64 {
	if tier < MinTier {
		tier = MinTier
	}
	if tier > MaxTier {
		tier = MaxTier
	}
	return t[tier-1]
}

func (t *TierTable) set(tier int, v float64) error {
	if tier < MinTier || tier > MaxTier {
		return fmt.Errorf("tier %d outside %d-%d", tier, MinTier, MaxTier)
	}
	t[tier-1] = v
	return nil
}

// UnmarshalYAML accepts either a tier-keyed mapping ({1: 35, 2: 220}) or a
// three-element sequence. Tiers absent from a mapping keep their prior value.
func (t *TierTable) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		var m map[int]float64
		if err := value.Decode(&m); err != nil {
			return err
		}
		for tier, v := range m {
			if err := t.set(tier, v); err != nil {
				return err
			}
		}
		return nil
	case yaml.SequenceNode:
		var s []float64
		if err := value.Decode(&s); err != nil {
			return err
		}
		if len(s) != MaxTier {
			return fmt.Errorf("tier table needs %d values, got %d", MaxTier, len(s))
		}
		copy(t[:], s)
		return nil
	}
	return fmt.Errorf("tier table must be a mapping or a sequence")
}

// MarshalYAML writes the table as a tier-keyed mapping.
func (t TierTable) MarshalYAML() (any, error) {
	return t.asMap(), nil
}

// MarshalJSON writes the table as a tier-keyed object.
func (t TierTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, MaxTier)
	for tier, v := range t.asMap() {
		m[strconv.Itoa(tier)] = v
	}
	return json.Marshal(m)
}

// UnmarshalTOML implements toml.Unmarshaler. TOML keys are strings, so a
// table reads as [demand.tier_kwh] "1" = 35, or as an array of three numbers.
func (t *TierTable) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case map[string]any:
		for k, raw := range v {
			tier, err := strconv.Atoi(k)
			if err != nil {
				return fmt.Errorf("tier key %q is not an integer", k)
			}
			f, err := tomlNumber(raw)
			if err != nil {
				return fmt.Errorf("tier %d: %w", tier, err)
			}
			if err := t.set(tier, f); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if len(v) != MaxTier {
			return fmt.Errorf("tier table needs %d values, got %d", MaxTier, len(v))
		}
		for i, raw := range v {
			f, err := tomlNumber(raw)
			if err != nil {
				return fmt.Errorf("tier %d: %w", i+1, err)
			}
			t[i] = f
		}
		return nil
	}
	return fmt.Errorf("tier table must be a table or an array, got %T", data)
}

func tomlNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func (t TierTable) asMap() map[int]float64 {
	m := make(map[int]float64, MaxTier)
	for i, v := range t {
		m[i+1] = v
	}
	return m
}
