package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hussein-66/SolarSystemCalc/internal/catalog"
	"github.com/Hussein-66/SolarSystemCalc/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, NewHandler())
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func calculateBody() map[string]any {
	return map[string]any{
		"region":          "beirut",
		"system_type":     "hybrid",
		"roof_area":       60,
		"roof_direction":  "south",
		"shading":         "minimal",
		"backup_days":     2,
		"battery_type":    "lead_acid",
		"energy_provider": "edl_and_generator",
		"appliances": []map[string]any{
			{"name": "Refrigerator", "category": "appliances", "watts": 150, "quantity": 1, "hours_per_day": 24, "is_critical": true},
			{"name": "Air Conditioner", "category": "cooling", "watts": 1200, "quantity": 1, "hours_per_day": 6},
			{"name": "LED Lights", "category": "lighting", "watts": 10, "quantity": 8, "hours_per_day": 6},
		},
	}
}

func TestCalculateEndpoint(t *testing.T) {
	router := testRouter()

	t.Run("successful calculation", func(t *testing.T) {
		w := postJSON(t, router, "/api/calculate", calculateBody())
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status        string `json:"status"`
			CalculationID string `json:"calculation_id"`
			Results       struct {
				Sizing struct {
					NominalKw float64 `json:"nominal_kw"`
				} `json:"sizing"`
				MonthlyProduction []json.RawMessage `json:"monthly_production"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "success", resp.Status)
		assert.NotEmpty(t, resp.CalculationID)
		assert.Greater(t, resp.Results.Sizing.NominalKw, 0.0)
		assert.Len(t, resp.Results.MonthlyProduction, 12)
	})

	t.Run("invalid input returns the issue list", func(t *testing.T) {
		body := calculateBody()
		body["appliances"] = []map[string]any{}

		w := postJSON(t, router, "/api/calculate", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Status string   `json:"status"`
			Issues []string `json:"issues"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid", resp.Status)
		assert.NotEmpty(t, resp.Issues)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestValidateEndpoint(t *testing.T) {
	router := testRouter()

	t.Run("valid input", func(t *testing.T) {
		w := postJSON(t, router, "/api/validate", calculateBody())
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Valid  bool     `json:"valid"`
			Issues []string `json:"issues"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Issues)
	})

	t.Run("missing region", func(t *testing.T) {
		body := calculateBody()
		body["region"] = ""

		w := postJSON(t, router, "/api/validate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Valid  bool     `json:"valid"`
			Issues []string `json:"issues"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Issues, "Location/region must be specified")
	})
}

func TestHealthEndpoint(t *testing.T) {
	w := getJSON(t, testRouter(), "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCatalogEndpoints(t *testing.T) {
	router := testRouter()

	t.Run("appliances", func(t *testing.T) {
		w := getJSON(t, router, "/api/catalog/appliances")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, len(catalog.Appliances), resp.Count)
	})

	t.Run("regions", func(t *testing.T) {
		w := getJSON(t, router, "/api/catalog/regions")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 8, resp.Count)
	})

	t.Run("equipment", func(t *testing.T) {
		w := getJSON(t, router, "/api/catalog/equipment")
		require.Equal(t, http.StatusOK, w.Code)

		var resp domain.EquipmentCatalog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Panels)
		assert.NotEmpty(t, resp.Inverters)
		assert.NotEmpty(t, resp.Batteries)
	})

	t.Run("utilities", func(t *testing.T) {
		w := getJSON(t, router, "/api/catalog/utilities")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Count)
	})
}

func TestRequestDefaults(t *testing.T) {
	t.Run("battery type defaults to lead acid", func(t *testing.T) {
		req := calculateRequest{Region: domain.RegionBeirut}
		assert.Equal(t, domain.ChemistryLeadAcid, req.profile().BatteryType)
	})

	t.Run("critical flag defaults by category", func(t *testing.T) {
		req := calculateRequest{Appliances: []applianceRequest{
			{Name: "LED Lights", Category: domain.CategoryLighting, Watts: 10, Quantity: 4, HoursPerDay: 6},
			{Name: "TV", Category: domain.CategoryEntertainment, Watts: 100, Quantity: 1, HoursPerDay: 4},
		}}
		entries := req.entries()
		require.Len(t, entries, 2)
		assert.True(t, entries[0].IsCritical)
		assert.False(t, entries[1].IsCritical)
	})

	t.Run("explicit critical flag wins over the category default", func(t *testing.T) {
		critical := false
		req := calculateRequest{Appliances: []applianceRequest{
			{Name: "Desk Lamp", Category: domain.CategoryLighting, Watts: 15, Quantity: 1, HoursPerDay: 3, IsCritical: &critical},
		}}
		entries := req.entries()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].IsCritical)
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("*"))
	SetupRoutes(r, NewHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/calculate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
