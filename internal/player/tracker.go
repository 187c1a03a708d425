package player

import (
	"context"
	"sync"
	"time"

	pkgLog "listenote/pkg/log"
)

// State is an immutable snapshot of the tracker.
type State struct {
	Locator     string
	IsPlaying   bool
	PositionMs  int64
	DurationMs  int64 // 0 while unknown
	IsBuffering bool
	LastError   string // one-shot; empty once acknowledged
}

// Config tunes the tracker.
type Config struct {
	PollInterval  time.Duration // position poll tick while playing
	SeekIncrement time.Duration // discrete seek step
}

const (
	defaultPollInterval  = 100 * time.Millisecond
	defaultSeekIncrement = 3 * time.Second
)

// Tracker owns the play/pause/seek state of one audio device handle. All
// state lives on a single goroutine that consumes device events, poll ticks
// and caller commands in order; callers block until their command has been
// applied, so no two mutations are ever in flight at once.
type Tracker struct {
	device Device
	l      pkgLog.Logger

	pollInterval time.Duration
	seekMs       int64

	cmds     chan func()
	quit     chan struct{}
	finished chan struct{}
	stop     sync.Once

	// Everything below is touched only by the run goroutine.
	state     State
	scrubbing bool
	ticker    *time.Ticker
	tickCh    <-chan time.Time
	nextSubID int
	subs      map[int]chan State
}

// New creates a Tracker over a device handle and starts its state loop.
func New(device Device, cfg Config, l pkgLog.Logger) *Tracker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.SeekIncrement <= 0 {
		cfg.SeekIncrement = defaultSeekIncrement
	}

	t := &Tracker{
		device:       device,
		l:            l,
		pollInterval: cfg.PollInterval,
		seekMs:       cfg.SeekIncrement.Milliseconds(),
		cmds:         make(chan func()),
		quit:         make(chan struct{}),
		finished:     make(chan struct{}),
		subs:         make(map[int]chan State),
	}
	go t.run()
	return t
}

func (t *Tracker) run() {
	defer close(t.finished)
	for {
		select {
		case fn := <-t.cmds:
			fn()
		case ev := <-t.device.Events():
			t.handleEvent(ev)
		case <-t.tickCh:
			if !t.scrubbing {
				t.state.PositionMs = t.device.PositionMs()
				t.publish()
			}
		case <-t.quit:
			t.teardown()
			return
		}
	}
}

// do runs fn on the loop goroutine and waits for it to finish. After Close
// it is a no-op.
func (t *Tracker) do(fn func()) {
	done := make(chan struct{})
	select {
	case t.cmds <- func() { fn(); close(done) }:
		<-done
	case <-t.quit:
	}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() State {
	var st State
	t.do(func() { st = t.state })
	return st
}

// Subscribe returns a channel of state snapshots. The current state is
// delivered immediately; afterwards a slow consumer only ever misses
// intermediate states, never the latest one.
func (t *Tracker) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)
	var id int
	t.do(func() {
		t.nextSubID++
		id = t.nextSubID
		t.subs[id] = ch
		ch <- t.state
	})
	cancel := func() {
		t.do(func() {
			if _, ok := t.subs[id]; ok {
				delete(t.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Load points the device at a new source. Loading the locator that is
// already loaded is a guaranteed no-op, so re-attaching the same source
// after navigation never resets the position.
func (t *Tracker) Load(ctx context.Context, locator string) {
	t.do(func() {
		if t.state.Locator == locator {
			return
		}
		if err := t.device.SetSource(locator); err != nil {
			t.l.Warnf(ctx, "player: set source %q: %v", locator, err)
			t.state.LastError = err.Error()
			t.publish()
			return
		}
		if err := t.device.Prepare(); err != nil {
			t.l.Warnf(ctx, "player: prepare %q: %v", locator, err)
			t.state.LastError = err.Error()
			t.publish()
			return
		}
		t.state.Locator = locator
		t.state.PositionMs = 0
		t.state.DurationMs = 0 // unknown until the device reports it
		t.publish()
	})
}

// PlayPause toggles the device play state. Polling starts and stops on the
// device's PlayingChanged event, not here.
func (t *Tracker) PlayPause(ctx context.Context) {
	t.do(func() {
		var err error
		if t.device.IsPlaying() {
			err = t.device.Pause()
		} else {
			err = t.device.Play()
		}
		if err != nil {
			t.l.Warnf(ctx, "player: play/pause: %v", err)
		}
	})
}

// Pause pauses playback if playing.
func (t *Tracker) Pause(ctx context.Context) {
	t.do(func() {
		if !t.device.IsPlaying() {
			return
		}
		if err := t.device.Pause(); err != nil {
			t.l.Warnf(ctx, "player: pause: %v", err)
		}
	})
}

// SeekForward moves the position forward by the seek increment, clamped to
// the duration. The displayed position updates immediately instead of
// waiting for the next poll tick.
func (t *Tracker) SeekForward(ctx context.Context) {
	t.seekBy(ctx, t.seekMs)
}

// SeekBackward moves the position backward by the seek increment, clamped
// to zero.
func (t *Tracker) SeekBackward(ctx context.Context) {
	t.seekBy(ctx, -t.seekMs)
}

func (t *Tracker) seekBy(ctx context.Context, deltaMs int64) {
	t.do(func() {
		newPos := t.state.PositionMs + deltaMs
		if newPos < 0 {
			newPos = 0
		}
		if d := t.state.DurationMs; d > 0 && newPos > d {
			newPos = d
		}
		if err := t.device.SeekTo(newPos); err != nil {
			t.l.Warnf(ctx, "player: seek to %d: %v", newPos, err)
			return
		}
		t.state.PositionMs = newPos
		t.publish()
	})
}

// OnScrubChange updates only the displayed position while the user drags a
// seek control. Polling is suspended so ticks do not fight the drag; the
// device is not touched until OnScrubCommit.
func (t *Tracker) OnScrubChange(fraction float64) {
	t.do(func() {
		t.scrubbing = true
		t.stopPolling()
		if fraction < 0 {
			fraction = 0
		}
		if fraction > 1 {
			fraction = 1
		}
		t.state.PositionMs = int64(fraction * float64(t.state.DurationMs))
		t.publish()
	})
}

// OnScrubCommit issues the actual device seek to the last displayed
// position and resumes polling if playback is active.
func (t *Tracker) OnScrubCommit(ctx context.Context) {
	t.do(func() {
		t.scrubbing = false
		if err := t.device.SeekTo(t.state.PositionMs); err != nil {
			t.l.Warnf(ctx, "player: scrub seek to %d: %v", t.state.PositionMs, err)
		}
		if t.state.IsPlaying {
			t.startPolling()
		}
	})
}

// AckError clears the one-shot playback error after it has been shown.
func (t *Tracker) AckError() {
	t.do(func() {
		if t.state.LastError == "" {
			return
		}
		t.state.LastError = ""
		t.publish()
	})
}

// Close cancels polling, releases the device handle and clears the loaded
// locator so a later Load is never mistaken for a no-op against a dead
// handle. Safe to call more than once.
func (t *Tracker) Close() {
	t.stop.Do(func() { close(t.quit) })
	<-t.finished
}

func (t *Tracker) handleEvent(ev Event) {
	switch e := ev.(type) {
	case PlayingChanged:
		t.state.IsPlaying = e.Playing
		if e.Playing {
			t.state.LastError = ""
			t.startPolling()
		} else {
			t.stopPolling()
		}
	case PlaybackStateChanged:
		t.state.IsBuffering = e.State == StateBuffering
		if t.state.DurationMs == 0 {
			if d := t.device.DurationMs(); d > 0 {
				t.state.DurationMs = d
			}
		}
		if e.State == StateEnded {
			// Reset so a replay starts clean.
			t.state.IsPlaying = false
			t.stopPolling()
			t.state.PositionMs = 0
			if err := t.device.Pause(); err != nil {
				t.l.Warnf(context.Background(), "player: pause at end: %v", err)
			}
			if err := t.device.SeekTo(0); err != nil {
				t.l.Warnf(context.Background(), "player: rewind at end: %v", err)
			}
		}
	case DurationKnown:
		if e.DurationMs > 0 {
			t.state.DurationMs = e.DurationMs
		}
	case PlaybackError:
		t.state.LastError = e.Err.Error()
		t.l.Warnf(context.Background(), "player: device error: %v", e.Err)
	}
	t.publish()
}

// startPolling begins the periodic position poll. Any prior poll is
// cancelled first so two tickers never race on the same state.
func (t *Tracker) startPolling() {
	t.stopPolling()
	t.ticker = time.NewTicker(t.pollInterval)
	t.tickCh = t.ticker.C
}

func (t *Tracker) stopPolling() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
		t.tickCh = nil
	}
}

func (t *Tracker) publish() {
	for _, ch := range t.subs {
		select {
		case <-ch:
		default:
		}
		ch <- t.state
	}
}

func (t *Tracker) teardown() {
	t.stopPolling()
	t.state.Locator = ""
	if err := t.device.Release(); err != nil {
		t.l.Warnf(context.Background(), "player: release device: %v", err)
	}
	for id, ch := range t.subs {
		delete(t.subs, id)
		close(ch)
	}
}
