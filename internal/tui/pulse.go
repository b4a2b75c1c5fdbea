package tui

import "time"

// PulseConfig holds configuration for the indicator pulse
type PulseConfig struct {
	Enabled bool // animations: on|off
	SpeedMs int  // time between pulse steps (default 120)
}

// PulseState holds the current step of the indicator pulse
type PulseState struct {
	Step   int // position on the triangle wave over pulseColors
	Config PulseConfig
}

// DefaultPulseConfig returns default pulse configuration
func DefaultPulseConfig() PulseConfig {
	return PulseConfig{
		Enabled: true,
		SpeedMs: 120,
	}
}

// NewPulseState creates a new pulse state
func NewPulseState(config PulseConfig) *PulseState {
	return &PulseState{Config: config}
}

// period is the number of steps for one bright-dim-bright cycle
func (p *PulseState) period() int {
	return 2 * (len(pulseColors) - 1)
}

// Advance moves the pulse one step along
func (p *PulseState) Advance() {
	if !p.Config.Enabled {
		return
	}
	p.Step = (p.Step + 1) % p.period()
}

// Color returns the indicator color for the current step
func (p *PulseState) Color() string {
	if !p.Config.Enabled {
		return ColorAccentBright
	}

	// Walk up the gradient, then back down
	idx := p.Step
	if idx >= len(pulseColors) {
		idx = p.period() - idx
	}
	return pulseColors[len(pulseColors)-1-idx]
}

// ShouldTick reports whether the pulse needs animation ticks
func (p *PulseState) ShouldTick() bool {
	return p.Config.Enabled
}

// GetTickInterval returns the time between pulse steps
func (p *PulseState) GetTickInterval() time.Duration {
	return time.Duration(p.Config.SpeedMs) * time.Millisecond
}
