package lookup

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
)

// NewRouter registers the lookup routes. Anything else, including a known path with
// the wrong method, gets an empty 404. Panics are recovered into a 500.
func NewRouter(svc *Service, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.SkipClean(true)

	r.HandleFunc("/", svc.handleUsage).Methods(http.MethodGet)
	r.HandleFunc("/find_rate", svc.handleFindRate).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	recovered := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger.Named("recovery"))),
		handlers.PrintRecoveryStack(false),
	)(r)

	accessLog := zapcore.Lock(&zapio.Writer{Log: logger.Named("access"), Level: zapcore.DebugLevel})

	return handlers.LoggingHandler(accessLog, recovered)
}
