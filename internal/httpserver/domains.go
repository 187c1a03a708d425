package httpserver

import (
	"context"

	focusHTTP "listenote/internal/focus/delivery/http"
	memoHTTP "listenote/internal/memo/delivery/http"
	memoUC "listenote/internal/memo/usecase"
	"listenote/internal/middleware"
	notebookHTTP "listenote/internal/notebook/delivery/http"
	notebookUC "listenote/internal/notebook/usecase"
	playerHTTP "listenote/internal/player/delivery/http"
	todolistHTTP "listenote/internal/todolist/delivery/http"
)

// registerDomainRoutes wires each domain: repository → use case → HTTP
// handler → routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	nbHandler := notebookHTTP.New(srv.l, notebookUC.New(srv.l, srv.store, srv.resolver))
	notebookHTTP.RegisterRoutes(api, nbHandler, mw)
	srv.l.Infof(ctx, "Notebook domain registered")

	mHandler := memoHTTP.New(srv.l, memoUC.New(srv.l, srv.store))
	memoHTTP.RegisterRoutes(api, mHandler, mw)
	srv.l.Infof(ctx, "Memo domain registered")

	todolistHTTP.RegisterRoutes(api, todolistHTTP.New(srv.l, srv.store), mw)
	srv.l.Infof(ctx, "To-do list domain registered")

	focusHTTP.RegisterRoutes(api, focusHTTP.New(srv.l, srv.store), mw)
	srv.l.Infof(ctx, "Focus domain registered")

	playerHTTP.RegisterRoutes(api, playerHTTP.New(srv.l, srv.tracker), mw)
	srv.l.Infof(ctx, "Player domain registered")

	return nil
}
