package model

import "time"

// FrameDelay is the pause between frames in units of 100µs
type FrameDelay int

const (
	MinFrameDelay     FrameDelay = 100
	MaxFrameDelay     FrameDelay = 10000
	FrameDelayStep    FrameDelay = 100
	DefaultFrameDelay FrameDelay = 1000

	frameDelayUnit = 100 * time.Microsecond
)

// Faster shortens the delay by one step, never below MinFrameDelay
func (d FrameDelay) Faster() FrameDelay {
	return (d - FrameDelayStep).Clamp()
}

// Slower lengthens the delay by one step, never above MaxFrameDelay
func (d FrameDelay) Slower() FrameDelay {
	return (d + FrameDelayStep).Clamp()
}

// Clamp bounds the delay to [MinFrameDelay, MaxFrameDelay]
func (d FrameDelay) Clamp() FrameDelay {
	return min(max(d, MinFrameDelay), MaxFrameDelay)
}

// Duration converts the delay to wall-clock time
func (d FrameDelay) Duration() time.Duration {
	return time.Duration(d) * frameDelayUnit
}

// Action is what a keypress asks the driver to do
type Action int

const (
	ActionNone Action = iota
	ActionFaster
	ActionSlower
	ActionQuit
)

// ActionForKey maps a key to its action; unknown keys do nothing
func ActionForKey(key rune) Action {
	switch key {
	case '+':
		return ActionFaster
	case '-':
		return ActionSlower
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
