package catalog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopCatalog/pkg/kit"
)

const (
	versionHeader = "X-Catalog-Version"
	readyTimeout  = 1 * time.Second
)

// SnapshotSource is what the HTTP layer needs from a Store.
type SnapshotSource interface {
	CurrentSnapshot() (*Snapshot, error)
	Ping(ctx context.Context) error
}

type Server struct {
	Store SnapshotSource
	Log   *zap.Logger
}

type healthResp struct {
	Healthy bool `json:"healthy"`
}

func (s *Server) mountProbes(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteJSON(w, http.StatusOK, healthResp{Healthy: true})
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)
}

func (s *Server) mountCatalog(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/categories", s.categories)
	r.Get("/products/{id}", s.get)
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteProblem(w, r, http.StatusServiceUnavailable, "catalog not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := NewFilter(q.Get("category"), q.Get("text"))
	kit.WriteJSON(w, http.StatusOK, ListProducts(snap, f))
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, ListCategories(snap))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteProblem(w, r, http.StatusBadRequest, "product id must be an integer")
		return
	}

	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	p, found := FindProduct(snap, id)
	if !found {
		kit.WriteProblem(w, r, http.StatusNotFound, "product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

// snapshot fetches the published Snapshot or writes a 500 problem.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*Snapshot, bool) {
	snap, err := s.Store.CurrentSnapshot()
	if err != nil {
		s.logger().Error("catalog unavailable", zap.Error(err), zap.String("path", r.URL.Path))
		kit.WriteProblem(w, r, http.StatusInternalServerError, "failed to load products")
		return nil, false
	}
	w.Header().Set(versionHeader, snap.Version)
	return snap, true
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
