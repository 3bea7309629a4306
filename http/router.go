package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/thankful-ai/autodns/internal/autodns"
)

type syncer interface {
	Sync(ctx context.Context, instanceID string) (autodns.Outcome, error)
}

// Router exposes the synchronizer over HTTP for local and manual triggers.
type Router struct {
	sync    syncer
	handler http.Handler
}

type RouterOpts struct {
	Log  zerolog.Logger
	Sync syncer
}

func NewRouter(opts RouterOpts) *Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(opts.Log))
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	rt := &Router{sync: opts.Sync, handler: r}
	r.Get("/health", rt.getHealth)
	r.Post("/sync/{instanceID}", e(rt.postSync))
	return rt
}

func (rt *Router) Handler() http.Handler { return rt.handler }

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			r.Header.Set("X-Request-ID", xid.New().String())
		}
		next.ServeHTTP(w, r)
	})
}

func (rt *Router) getHealth(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

// postSync runs one synchronization for the named instance and reports what
// it did to the zone.
func (rt *Router) postSync(
	w http.ResponseWriter,
	r *http.Request,
) (interface{}, error) {
	instanceID := chi.URLParam(r, "instanceID")
	if instanceID == "" {
		return nil, badRequest(errors.New("missing instance id"))
	}

	lg := hlog.FromRequest(r)
	lg.Info().Str("instance", instanceID).Msg("syncing instance")

	ctx := r.Context()
	outcome, err := rt.sync.Sync(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}
	return struct {
		Instance string `json:"instance"`
		Outcome  string `json:"outcome"`
	}{Instance: instanceID, Outcome: string(outcome)}, nil
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

func badRequest(err error) badRequestError {
	return badRequestError(fmt.Sprintf("bad request: %v", err))
}

func (e badRequestError) Is(target error) bool {
	_, ok := target.(badRequestError)
	return ok
}

type apiHandler func(http.ResponseWriter, *http.Request) (interface{}, error)

func e(h apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		x, err := h(w, r)
		switch {
		case errors.Is(err, badRequestError("")):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if x == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		_ = json.NewEncoder(w).Encode(struct {
			Data interface{} `json:"data"`
		}{Data: x})
	}
}
