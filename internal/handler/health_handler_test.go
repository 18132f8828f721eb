package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func okPinger() Pinger {
	return PingerFunc(func(context.Context) error { return nil })
}

func failingPinger() Pinger {
	return PingerFunc(func(context.Context) error { return errors.New("unreachable") })
}

func TestHealthHandler_GetHealth(t *testing.T) {
	tests := []struct {
		name        string
		db, cache   Pinger
		wantCode    int
		wantCache   string
		wantDBState string
	}{
		{"all up", okPinger(), okPinger(), http.StatusOK, "connected", "connected"},
		{"no cache", okPinger(), nil, http.StatusOK, "disabled", "connected"},
		{"cache down", okPinger(), failingPinger(), http.StatusOK, "disconnected", "connected"},
		{"db down", failingPinger(), okPinger(), http.StatusServiceUnavailable, "connected", "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(tt.db, tt.cache).GetHealth)

			rec := doRequest(r, http.MethodGet, "/health", "")
			assert.Equal(t, tt.wantCode, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantDBState, body["database"])
			assert.Equal(t, tt.wantCache, body["cache"])
		})
	}
}
