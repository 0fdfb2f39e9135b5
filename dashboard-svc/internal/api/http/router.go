package httpapi

import (
	"net/http"
	"time"

	"cantina-feedback/logger"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, middlewares ...mux.MiddlewareFunc) http.Handler {
	r := mux.NewRouter().UseEncodedPath()
	handler.RegisterRoutes(r)
	r.Use(requestLogger)
	for _, mw := range middlewares {
		r.Use(mw)
	}
	return cors.Default().Handler(r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Get().Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func StartServer(addr string, handler http.Handler) error {
	logger.Get().Info().Str("addr", addr).Msg("Dashboard Service starting")
	return http.ListenAndServe(addr, handler)
}
