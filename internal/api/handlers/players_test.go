package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/pkg/utils"
)

func setupPlayerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPlayerHandler(10)
	router.POST("/players/generate", handler.GeneratePlayers)
	router.POST("/teams/generate", handler.GenerateTeam)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGeneratePlayersEndpoint(t *testing.T) {
	router := setupPlayerRouter()

	w := postJSON(t, router, "/players/generate", gin.H{"count": 3, "region": "EU", "seed": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var players []models.Player
	require.NoError(t, json.Unmarshal(data, &players))
	require.Len(t, players, 3)
	for _, p := range players {
		assert.Equal(t, "EU", p.Region)
	}
}

func TestGeneratePlayersRejectsBadRegion(t *testing.T) {
	router := setupPlayerRouter()

	w := postJSON(t, router, "/players/generate", gin.H{"count": 1, "region": "MARS"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
}

func TestGenerateTeamEndpoint(t *testing.T) {
	router := setupPlayerRouter()

	w := postJSON(t, router, "/teams/generate", gin.H{"seed": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var roster []models.Player
	require.NoError(t, json.Unmarshal(data, &roster))
	assert.Len(t, roster, 5)
}

func TestGenerateTeamRejectsOversizedRoster(t *testing.T) {
	router := setupPlayerRouter()

	w := postJSON(t, router, "/teams/generate", gin.H{"size": 50})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
