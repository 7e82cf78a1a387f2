// Package lookup serves tax rate queries over HTTP.
package lookup

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/yama6a/zip-tax-rates/internal/pkg/store"
	"go.uber.org/zap"
)

const (
	UsageMessage = "Try POSTing data to /find_rate such as: " +
		"`curl http://localhost:8001/find_rate -XPOST -d '{\"zip\":\"78701\"}'`"
	NotFoundMessage = "Not Found"

	maxBodyBytes = 1 << 20
)

// Service answers rate lookups from the store. It keeps no per-request state and
// is safe for concurrent use as long as the store is.
type Service struct {
	store        store.Store
	storeName    string
	storeTimeout time.Duration
	logger       *zap.Logger
}

func NewService(s store.Store, storeName string, storeTimeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:        s,
		storeName:    storeName,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// handleUsage handles GET /.
func (s *Service) handleUsage(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, UsageMessage)
}

// handleFindRate handles POST /find_rate.
func (s *Service) handleFindRate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fault(w, "failed reading request body", err)
		return
	}

	zip, err := parseZip(body)
	if err != nil {
		s.fault(w, "rejected find_rate request", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()

	rate, err := s.store.Get(ctx, s.storeName, zip)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Debug("no rate for zip", zap.String("zip", zip))
		writeText(w, http.StatusNotFound, NotFoundMessage)
		return
	}
	if err != nil {
		s.logger.Error("failed looking up rate", zap.String("zip", zip), zap.Error(err))
		failRequest(w)
		return
	}

	writeText(w, http.StatusOK, rate)
}

// fault answers a request that could not be handled because of its input.
func (s *Service) fault(w http.ResponseWriter, msg string, err error) {
	s.logger.Warn(msg, zap.Error(err))
	failRequest(w)
}

// failRequest answers 500 and closes the connection afterwards.
func failRequest(w http.ResponseWriter) {
	w.Header().Set("Connection", "close")
	writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// notFound answers unknown routes with an empty 404.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// writeText writes body as-is, without a trailing newline.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
