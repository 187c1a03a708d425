package mediameta_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"listenote/pkg/mediameta"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type countingProber struct {
	meta  mediameta.Metadata
	err   error
	calls int
}

func (p *countingProber) Probe(ctx context.Context, locator string) (mediameta.Metadata, error) {
	p.calls++
	return p.meta, p.err
}

func TestResolveCachesSuccessfulProbes(t *testing.T) {
	prober := &countingProber{meta: mediameta.Metadata{Title: "Song", DurationMs: 180_000}}
	r, err := mediameta.NewResolver(prober, 8, time.Second, nopLogger{})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		meta := r.Resolve(ctx, "content://audio/1")
		if meta.Title != "Song" || meta.DurationMs != 180_000 {
			t.Fatalf("unexpected metadata: %+v", meta)
		}
	}
	if prober.calls != 1 {
		t.Errorf("expected 1 probe for cached locator, got %d", prober.calls)
	}
}

func TestResolveRecoversProbeFailureWithDefaults(t *testing.T) {
	prober := &countingProber{err: errors.New("unreadable")}
	r, err := mediameta.NewResolver(prober, 8, time.Second, nopLogger{})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	meta := r.Resolve(context.Background(), "content://audio/broken")
	if meta.Title != mediameta.DefaultTitle {
		t.Errorf("title = %q, want %q", meta.Title, mediameta.DefaultTitle)
	}
	if meta.DurationMs != 0 {
		t.Errorf("duration = %d, want 0", meta.DurationMs)
	}

	// Failures are not cached; a later probe may succeed.
	r.Resolve(context.Background(), "content://audio/broken")
	if prober.calls != 2 {
		t.Errorf("expected failed probes to bypass the cache, got %d calls", prober.calls)
	}
}

func TestPathProber(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    string
		wantErr bool
	}{
		{
			name:    "Plain file path",
			locator: "/music/take_five.mp3",
			want:    "take_five",
		},
		{
			name:    "File URL with escapes",
			locator: "file:///music/My%20Song.flac",
			want:    "My Song",
		},
		{
			name:    "Content URI",
			locator: "content://media/external/audio/lecture.m4a",
			want:    "lecture",
		},
		{
			name:    "Bare root",
			locator: "/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := mediameta.PathProber{}.Probe(context.Background(), tt.locator)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.locator)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.Title != tt.want {
				t.Errorf("title = %q, want %q", meta.Title, tt.want)
			}
		})
	}
}
