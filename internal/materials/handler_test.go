package materials_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/bootstrap"
	"github.com/scott198989/ParameterPath-Optimizer/internal/config"
	"github.com/scott198989/ParameterPath-Optimizer/internal/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	return server.NewEngine(cfg, bootstrap.Build(cfg))
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestMaterialsList(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/materials")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Materials []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"materials"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Materials) != 4 {
		t.Fatalf("expected 4 materials, got %d", len(body.Materials))
	}
	if body.Materials[0].ID != "hdpe" {
		t.Fatalf("expected hdpe first, got %s", body.Materials[0].ID)
	}
}

func TestMaterialsGet(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/materials/evoh")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var profile struct {
		ID            string `json:"id"`
		MeltTempRange struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"meltTempRange"`
		Notes []string `json:"notes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile.ID != "evoh" {
		t.Fatalf("expected id evoh, got %s", profile.ID)
	}
	if profile.MeltTempRange.Min >= profile.MeltTempRange.Max {
		t.Fatalf("melt temp range inverted: %+v", profile.MeltTempRange)
	}
	if len(profile.Notes) == 0 {
		t.Fatalf("expected notes, got none")
	}
}

func TestMaterialsGetUnknown(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/materials/polystyrene")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
