package handlers

import (
	"net/http"
	"time"

	"skincare-companion-api/pkg/models"
	"skincare-companion-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoutineHandler はルーチン分析・スケジュール関連のハンドラです。
type RoutineHandler struct {
	analysisService   *services.RoutineAnalysisService
	scheduleService   *services.ScheduleService
	ingredientService *services.IngredientService
}

// NewRoutineHandler は新しいRoutineHandlerを生成します。
func NewRoutineHandler(analysisService *services.RoutineAnalysisService, scheduleService *services.ScheduleService, ingredientService *services.IngredientService) *RoutineHandler {
	return &RoutineHandler{
		analysisService:   analysisService,
		scheduleService:   scheduleService,
		ingredientService: ingredientService,
	}
}

// AnalyzeRoutine は製品リストのコンフリクト分析と相互作用グラフを返します。
func (h *RoutineHandler) AnalyzeRoutine(c *gin.Context) {
	var req models.RoutineAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	conflicts, graph := h.analysisService.AnalyzeRoutine(req.Products)

	c.JSON(http.StatusOK, models.RoutineAnalysisResponse{
		Success:    true,
		AnalysisID: uuid.New().String(),
		Conflicts:  conflicts,
		Graph:      graph,
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

// BuildSchedule は週間スケジュールを生成して返します。
func (h *RoutineHandler) BuildSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	days := req.Days
	if days <= 0 {
		days = services.DefaultScheduleDays
	}

	schedule := h.scheduleService.BuildSchedule(req.Products, days)

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Success:  true,
		Days:     days,
		Schedule: schedule,
	})
}

// GetSampleRoutine はデモ用のサンプル製品リストを返します。
func (h *RoutineHandler) GetSampleRoutine(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.ingredientService.SampleRoutine(),
	})
}
