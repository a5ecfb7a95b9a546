package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"skincare-companion-api/pkg/handlers"
	"skincare-companion-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// テスト環境の設定
	gin.SetMode(gin.TestMode)

	// .envファイルを読み込み（テスト環境では無視される可能性がある）
	godotenv.Load("../../.env")

	// テスト実行
	code := m.Run()

	// 終了
	os.Exit(code)
}

func TestHealthEndpoint(t *testing.T) {
	router := gin.New()
	router.GET("/health", handlers.HealthCheck)

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "status")
}

func TestHelloEndpoint(t *testing.T) {
	router := gin.New()
	router.GET("/api/v1/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hello from Skincare Companion API!",
		})
	})

	req, err := http.NewRequest("GET", "/api/v1/hello", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello from Skincare Companion API!")
}

func TestServiceInitialization(t *testing.T) {
	ingredientService := services.NewIngredientService()
	climateService := services.NewClimateService()

	assert.NotNil(t, ingredientService, "IngredientService should not be nil")
	assert.NotNil(t, climateService, "ClimateService should not be nil")
	assert.NotNil(t, services.NewRoutineAnalysisService(ingredientService))
	assert.NotNil(t, services.NewScheduleService(ingredientService))
	assert.NotNil(t, services.NewTravelAdjustmentService(ingredientService, climateService))
}
