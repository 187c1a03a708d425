package player

// PlaybackState is the device-reported stream state.
type PlaybackState int

const (
	StateIdle PlaybackState = iota
	StateBuffering
	StateReady
	StateEnded
)

// String returns a readable name for logging.
func (s PlaybackState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuffering:
		return "buffering"
	case StateReady:
		return "ready"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is a change notification pushed by the device. The tracker consumes
// events in the order the device emits them and never reorders or coalesces.
type Event interface {
	isEvent()
}

// PlayingChanged reports a play/pause flip.
type PlayingChanged struct {
	Playing bool
}

// PlaybackStateChanged reports a stream state transition.
type PlaybackStateChanged struct {
	State PlaybackState
}

// DurationKnown reports the total duration once the device has it.
type DurationKnown struct {
	DurationMs int64
}

// PlaybackError reports a decode/stream failure. Non-fatal: the tracker
// records it for one-shot user-visible reporting and never retries.
type PlaybackError struct {
	Err error
}

func (PlayingChanged) isEvent()       {}
func (PlaybackStateChanged) isEvent() {}
func (DurationKnown) isEvent()        {}
func (PlaybackError) isEvent()        {}

// Device is the opaque media playback engine. One device handle is
// exclusively owned by one Tracker at a time.
type Device interface {
	SetSource(locator string) error
	Prepare() error
	Play() error
	Pause() error
	SeekTo(ms int64) error
	PositionMs() int64
	DurationMs() int64
	IsPlaying() bool

	// Events delivers change notifications. The channel stays open for the
	// lifetime of the handle.
	Events() <-chan Event

	// Release frees the underlying handle.
	Release() error
}
