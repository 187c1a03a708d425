package player_test

import (
	"testing"
	"time"

	"listenote/internal/player"
)

func newClock(t *testing.T, durationMs int64) *player.ClockDevice {
	t.Helper()
	d := player.NewClockDevice(func(string) int64 { return durationMs })
	if err := d.SetSource("content://audio/X"); err != nil {
		t.Fatalf("set source: %v", err)
	}
	if err := d.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return d
}

func TestClockDeviceAdvancesWhilePlaying(t *testing.T) {
	d := newClock(t, 60_000)

	if err := d.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if pos := d.PositionMs(); pos <= 0 {
		t.Errorf("position = %d, want > 0 while playing", pos)
	}

	if err := d.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	frozen := d.PositionMs()
	time.Sleep(30 * time.Millisecond)
	if pos := d.PositionMs(); pos != frozen {
		t.Errorf("position moved from %d to %d while paused", frozen, pos)
	}
}

func TestClockDeviceSeekAndEnd(t *testing.T) {
	d := newClock(t, 50)

	if err := d.SeekTo(20); err != nil {
		t.Fatalf("seek: %v", err)
	}
	if pos := d.PositionMs(); pos != 20 {
		t.Errorf("position = %d, want 20 after paused seek", pos)
	}

	if err := d.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	if pos := d.PositionMs(); pos != 50 {
		t.Errorf("position = %d, want clamped to duration 50", pos)
	}

	ended := false
	for {
		select {
		case ev := <-d.Events():
			if sc, ok := ev.(player.PlaybackStateChanged); ok && sc.State == player.StateEnded {
				ended = true
			}
			continue
		default:
		}
		break
	}
	if !ended {
		t.Error("expected a StateEnded event after passing the duration")
	}
}

func TestClockDeviceReleased(t *testing.T) {
	d := newClock(t, 1_000)
	if err := d.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := d.Play(); err != player.ErrDeviceReleased {
		t.Errorf("play after release: err = %v, want ErrDeviceReleased", err)
	}
}
