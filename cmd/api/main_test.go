package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/GTDGit/pharmacy_api/internal/config"
	"github.com/GTDGit/pharmacy_api/internal/handler"
	"github.com/GTDGit/pharmacy_api/internal/metrics"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	setupRoutes(router, &Handlers{
		Health:     handler.NewHealthHandler(nil, nil),
		Client:     handler.NewClientHandler(nil),
		Medication: handler.NewMedicationHandler(nil),
	}, metrics.New())

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"GET /clients", "GET /clients/:id", "POST /clients",
		"GET /cliente/:id", "POST /client",
		"GET /medications", "GET /medications/:id", "POST /medications",
		"GET /medicamento", "POST /medication",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewEntityCache_InProcess(t *testing.T) {
	c, err := newEntityCache(&config.Config{})
	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}
