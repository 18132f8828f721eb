package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(clients *ClientHandler, medications *MedicationHandler) *gin.Engine {
	r := gin.New()
	if clients != nil {
		r.GET("/clients", clients.ListClients)
		r.GET("/clients/:id", clients.GetClient)
		r.POST("/clients", clients.CreateClient)
	}
	if medications != nil {
		r.GET("/medications", medications.ListMedications)
		r.GET("/medications/:id", medications.GetMedication)
		r.POST("/medications", medications.CreateMedication)
	}
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
