package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"listenote/config"
	"listenote/internal/middleware"
	"listenote/internal/model"
	"listenote/internal/notebook"
	notebookHTTP "listenote/internal/notebook/delivery/http"
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

// fakeUseCase is a canned notebook.UseCase.
type fakeUseCase struct {
	importOut notebook.ImportOutput
	importErr error
	detailErr error
}

func (f *fakeUseCase) Import(ctx context.Context, input notebook.ImportInput) (notebook.ImportOutput, error) {
	return f.importOut, f.importErr
}

func (f *fakeUseCase) List(ctx context.Context) ([]model.Notebook, error) {
	return []model.Notebook{{ID: 1, Title: "Song", CreatedAt: time.Now()}}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, id int64) (notebook.DetailOutput, error) {
	return notebook.DetailOutput{}, f.detailErr
}

func (f *fakeUseCase) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeUseCase) Sources(ctx context.Context) ([]model.AudioSource, error) {
	return nil, nil
}

func newTestRouter(uc notebook.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100})
	notebookHTTP.RegisterRoutes(r.Group("/api/v1"), notebookHTTP.New(nopLogger{}, uc), mw)
	return r
}

func TestImportEndpoint(t *testing.T) {
	uc := &fakeUseCase{
		importOut: notebook.ImportOutput{
			Notebook:    model.Notebook{ID: 7, AudioSourceID: 3, Title: "Song_2"},
			AudioSource: model.AudioSource{ID: 3, URI: "content://audio/A", Title: "Song", DurationMs: 73_456},
			ReusedAudio: true,
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/notebooks/import",
		strings.NewReader(`{"locator":"content://audio/A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Notebook struct {
				Title string `json:"title"`
			} `json:"notebook"`
			AudioSource struct {
				Duration string `json:"duration"`
			} `json:"audio_source"`
			ReusedAudio bool `json:"reused_audio"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Notebook.Title != "Song_2" {
		t.Errorf("notebook title = %q, want Song_2", resp.Data.Notebook.Title)
	}
	if resp.Data.AudioSource.Duration != "01:13" {
		t.Errorf("duration = %q, want 01:13", resp.Data.AudioSource.Duration)
	}
	if !resp.Data.ReusedAudio {
		t.Error("reused_audio should be true")
	}
}

func TestImportEndpointEmptyLocator(t *testing.T) {
	r := newTestRouter(&fakeUseCase{importErr: notebook.ErrEmptyLocator})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/notebooks/import",
		strings.NewReader(`{"locator":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDetailEndpointNotFound(t *testing.T) {
	r := newTestRouter(&fakeUseCase{detailErr: notebook.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/notebooks/42", nil)
	r.ServeHTTP(w, req)

	if w.Code != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDetailEndpointBadID(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/notebooks/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
