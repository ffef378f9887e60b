package config

import (
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateRules checks that a rules table can drive a session.
// Checks:
//   - World, entity and explosion dimensions are positive
//   - Session values are usable
//   - Every color has a positive speed
//   - The wave table starts at 1, is strictly ascending and only uses known colors
//   - Every wave row has one positive-sum weight per color
func ValidateRules(r Rules) error {
	if err := validateGeometry(r); err != nil {
		return err
	}
	if err := validateSession(r.Session); err != nil {
		return err
	}
	if err := validateColors(r.Colors); err != nil {
		return err
	}
	return validateWaves(r)
}

func validateGeometry(r Rules) error {
	dims := []struct {
		name string
		v    float64
	}{
		{"world.width", r.World.Width},
		{"world.height", r.World.Height},
		{"player.width", r.Player.Width},
		{"player.height", r.Player.Height},
		{"player.speed", r.Player.Speed},
		{"base.width", r.Base.Width},
		{"base.height", r.Base.Height},
		{"missile.width", r.Missile.Width},
		{"missile.height", r.Missile.Height},
		{"explosion.max_radius", r.Explosion.MaxRadius},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return ValidationError{
				Code:    "INVALID_DIMENSION",
				Message: fmt.Sprintf("%s must be positive, got %v", d.name, d.v),
			}
		}
	}

	if r.Base.Height >= r.World.Height {
		return ValidationError{
			Code:    "INVALID_DIMENSION",
			Message: "base must be shorter than the world",
		}
	}
	if r.Explosion.InitialRadius < 0 || r.Explosion.InitialRadius > r.Explosion.MaxRadius {
		return ValidationError{
			Code:    "INVALID_EXPLOSION",
			Message: fmt.Sprintf("initial radius %v must be within [0, %v]", r.Explosion.InitialRadius, r.Explosion.MaxRadius),
		}
	}
	if r.Explosion.DurationTicks <= 0 {
		return ValidationError{
			Code:    "INVALID_EXPLOSION",
			Message: "duration_ticks must be positive",
		}
	}
	return nil
}

func validateSession(s SessionRules) error {
	switch {
	case s.StartLife <= 0:
		return ValidationError{Code: "INVALID_SESSION", Message: "start_life must be positive"}
	case s.SpawnIntervalMS <= 0:
		return ValidationError{Code: "INVALID_SESSION", Message: "spawn_interval_ms must be positive"}
	case s.MaxWave < 1:
		return ValidationError{Code: "INVALID_SESSION", Message: "max_wave must be at least 1"}
	case s.BatchSize < 1:
		return ValidationError{Code: "INVALID_SESSION", Message: "batch_size must be at least 1"}
	}
	return nil
}

func validateColors(colors []ColorRule) error {
	if len(colors) == 0 {
		return ValidationError{Code: "NO_COLORS", Message: "color table is empty"}
	}
	seen := make(map[string]bool, len(colors))
	for _, c := range colors {
		name := c.Color.String()
		if seen[name] {
			return ValidationError{
				Code:    "DUPLICATE_COLOR",
				Message: fmt.Sprintf("color %s listed twice", name),
			}
		}
		seen[name] = true
		if c.Speed <= 0 {
			return ValidationError{
				Code:    "INVALID_SPEED",
				Message: fmt.Sprintf("color %s must have a positive speed", name),
			}
		}
	}
	return nil
}

func validateWaves(r Rules) error {
	if len(r.Waves) == 0 {
		return ValidationError{Code: "NO_WAVES", Message: "wave table is empty"}
	}
	if r.Waves[0].From != 1 {
		return ValidationError{
			Code:    "INVALID_WAVE_START",
			Message: fmt.Sprintf("wave table must start at 1, starts at %d", r.Waves[0].From),
		}
	}

	prev := 0
	for _, w := range r.Waves {
		if w.From <= prev {
			return ValidationError{
				Code:    "UNSORTED_WAVES",
				Message: fmt.Sprintf("wave %d listed after wave %d", w.From, prev),
			}
		}
		prev = w.From

		if len(w.Colors) == 0 || len(w.Colors) != len(w.Weights) {
			return ValidationError{
				Code:    "WEIGHT_MISMATCH",
				Message: fmt.Sprintf("wave %d has %d colors and %d weights", w.From, len(w.Colors), len(w.Weights)),
			}
		}

		total := 0.0
		for i, c := range w.Colors {
			if _, ok := r.ColorRule(c); !ok {
				return ValidationError{
					Code:    "INVALID_COLOR",
					Message: fmt.Sprintf("wave %d uses color %s missing from the color table", w.From, c),
				}
			}
			if w.Weights[i] < 0 {
				return ValidationError{
					Code:    "INVALID_WEIGHT",
					Message: fmt.Sprintf("wave %d has a negative weight for %s", w.From, c),
				}
			}
			total += w.Weights[i]
		}
		if total <= 0 {
			return ValidationError{
				Code:    "INVALID_WEIGHT",
				Message: fmt.Sprintf("wave %d weights sum to zero", w.From),
			}
		}
	}
	return nil
}
