package main

import (
	"log"
	"net/http"

	config "skincare-companion-api/configs"
	"skincare-companion-api/pkg/handlers"
	"skincare-companion-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .envファイルを読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// 設定の読み込み
	cfg := config.LoadConfig()

	// Ginルーターの初期化
	r := gin.Default()

	// サービスの初期化
	monitoringService := services.NewMonitoringService()
	ingredientService := services.NewIngredientService()
	climateService := services.NewClimateService()
	analysisService := services.NewRoutineAnalysisService(ingredientService)
	scheduleService := services.NewScheduleService(ingredientService)
	adjustmentService := services.NewTravelAdjustmentService(ingredientService, climateService)

	// ハンドラーの初期化
	routineHandler := handlers.NewRoutineHandler(analysisService, scheduleService, ingredientService)
	climateHandler := handlers.NewClimateHandler(climateService, adjustmentService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	adminHandler := handlers.NewAdminHandler(cfg)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// ミドルウェアの登録
	r.Use(monitoringService.LoggingMiddleware()) // ロギングミドルウェアをグローバルに適用
	r.Use(cors.Default())

	// 認証ミドルウェア
	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	// ヘルスチェックエンドポイント
	r.GET("/health", handlers.HealthCheck)

	// APIバージョン1のルートグループ
	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		v1.GET("/hello", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Hello from Skincare Companion API!",
			})
		})

		// 管理者向けAPI
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		// モニタリングAPI
		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		// ルーチン分析API
		routine := v1.Group("/routine")
		{
			routine.POST("/analyze", routineHandler.AnalyzeRoutine)
			routine.POST("/schedule", routineHandler.BuildSchedule)
			routine.POST("/import", routineHandler.ImportRoutineFile)
			routine.GET("/samples", routineHandler.GetSampleRoutine)
		}

		// 気候データAPI
		climate := v1.Group("/climate")
		{
			climate.GET("/locations", climateHandler.GetLocations)
			climate.GET("/profile", climateHandler.GetClimateProfile) // ?location=Tokyo
			climate.POST("/adjust", climateHandler.AdjustForTravel)
		}

		// 成分データベースAPI
		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.ListIngredients)
			ingredients.GET("/common", ingredientHandler.GetCommonIngredients)
			ingredients.GET("/profile", ingredientHandler.GetIngredientProfile) // ?name=retinol
		}
	}

	log.Println("Starting Skincare Companion API server on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
