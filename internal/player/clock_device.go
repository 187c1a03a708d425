package player

import (
	"errors"
	"sync"
	"time"
)

// ErrDeviceReleased is returned by device operations after Release.
var ErrDeviceReleased = errors.New("device released")

// ClockDevice is a headless playback engine. Position advances by wall
// clock while playing, so the full load/play/pause/seek lifecycle works
// without any audio hardware attached. Duration comes from the injected
// lookup; 0 means unknown.
type ClockDevice struct {
	durationFor func(locator string) int64

	mu         sync.Mutex
	locator    string
	durationMs int64
	playing    bool
	basePosMs  int64
	startedAt  time.Time
	ended      bool
	released   bool

	events chan Event
}

// NewClockDevice creates a clock device. durationFor maps a locator to its
// duration in milliseconds; return 0 when unknown.
func NewClockDevice(durationFor func(locator string) int64) *ClockDevice {
	return &ClockDevice{
		durationFor: durationFor,
		events:      make(chan Event, 16),
	}
}

func (d *ClockDevice) emit(ev Event) {
	select {
	case d.events <- ev:
	default:
		// A stalled consumer only loses intermediate events.
	}
}

// SetSource points the device at a new locator and resets all transport
// state.
func (d *ClockDevice) SetSource(locator string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return ErrDeviceReleased
	}
	d.locator = locator
	d.durationMs = 0
	d.playing = false
	d.basePosMs = 0
	d.ended = false
	return nil
}

// Prepare resolves the duration and reports the device ready.
func (d *ClockDevice) Prepare() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return ErrDeviceReleased
	}
	d.durationMs = d.durationFor(d.locator)
	if d.durationMs > 0 {
		d.emit(DurationKnown{DurationMs: d.durationMs})
	}
	d.emit(PlaybackStateChanged{State: StateReady})
	return nil
}

func (d *ClockDevice) Play() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return ErrDeviceReleased
	}
	if d.playing {
		return nil
	}
	d.playing = true
	d.startedAt = time.Now()
	d.emit(PlayingChanged{Playing: true})
	return nil
}

func (d *ClockDevice) Pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return ErrDeviceReleased
	}
	if !d.playing {
		return nil
	}
	d.basePosMs = d.positionLocked()
	d.playing = false
	d.emit(PlayingChanged{Playing: false})
	return nil
}

func (d *ClockDevice) SeekTo(ms int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return ErrDeviceReleased
	}
	d.basePosMs = ms
	d.startedAt = time.Now()
	if d.durationMs == 0 || ms < d.durationMs {
		d.ended = false
	}
	return nil
}

// PositionMs returns the current position. Reaching the end of a known
// duration emits StateEnded once and clamps.
func (d *ClockDevice) PositionMs() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	pos := d.positionLocked()
	if d.durationMs > 0 && pos >= d.durationMs {
		pos = d.durationMs
		if !d.ended {
			d.ended = true
			d.emit(PlaybackStateChanged{State: StateEnded})
		}
	}
	return pos
}

func (d *ClockDevice) positionLocked() int64 {
	if !d.playing {
		return d.basePosMs
	}
	return d.basePosMs + time.Since(d.startedAt).Milliseconds()
}

func (d *ClockDevice) DurationMs() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.durationMs
}

func (d *ClockDevice) IsPlaying() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

func (d *ClockDevice) Events() <-chan Event {
	return d.events
}

// Release stops playback and invalidates the handle.
func (d *ClockDevice) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.playing = false
	d.released = true
	return nil
}
