package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type systemHandler struct {
	responder   Responder
	startupTime time.Time
}

func newSystemHandler(startupTime time.Time) systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()
	return systemHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
	}
}

func (h systemHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
