package defects_test

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

func TestDefectsList(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/defects")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Defects []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"defects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Defects) != 13 {
		t.Fatalf("expected 13 defects, got %d", len(body.Defects))
	}
	for _, d := range body.Defects {
		if d.ID == "" || d.Name == "" {
			t.Fatalf("incomplete defect entry: %+v", d)
		}
	}
}

func TestDefectsGet(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/defects/melt_fracture")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var profile struct {
		ID     string `json:"id"`
		Causes []struct {
			Cause       string   `json:"cause"`
			Probability string   `json:"probability"`
			Adjustments []string `json:"adjustments"`
		} `json:"causes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile.ID != "melt_fracture" {
		t.Fatalf("expected id melt_fracture, got %s", profile.ID)
	}
	if len(profile.Causes) == 0 {
		t.Fatalf("expected causes, got none")
	}
	for _, c := range profile.Causes {
		if len(c.Adjustments) == 0 {
			t.Fatalf("cause %q has no adjustments", c.Cause)
		}
	}
}

func TestDefectsGetUnknown(t *testing.T) {
	router := newTestRouter()

	resp := getPath(router, "/api/v1/defects/fisheyes")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
