package handlers

import (
	"net/http"

	"skincare-companion-api/pkg/models"
	"skincare-companion-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ClimateHandler は気候データ・旅行調整関連のハンドラです。
type ClimateHandler struct {
	climateService    *services.ClimateService
	adjustmentService *services.TravelAdjustmentService
}

// NewClimateHandler は新しいClimateHandlerを生成します。
func NewClimateHandler(climateService *services.ClimateService, adjustmentService *services.TravelAdjustmentService) *ClimateHandler {
	return &ClimateHandler{
		climateService:    climateService,
		adjustmentService: adjustmentService,
	}
}

// GetLocations は登録済みの地域一覧を返します。
func (h *ClimateHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.climateService.Locations(),
	})
}

// GetClimateProfile は地域名から気候プロファイルを返します。
// 未登録の地域は既定プロファイルになります。
func (h *ClimateHandler) GetClimateProfile(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationパラメータが必要です。"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"location": location,
		"climate":  h.climateService.GetClimateData(location),
	})
}

// AdjustForTravel は自宅と旅行先の気候差に基づくルーチン調整を返します。
func (h *ClimateHandler) AdjustForTravel(c *gin.Context) {
	var req models.TravelAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	home := h.climateService.GetClimateData(req.HomeLocation)
	destination := h.climateService.GetClimateData(req.DestinationLocation)

	changes, adjustments, adjustedRoutine := h.adjustmentService.AdjustForClimate(req.Products, home, destination)

	c.JSON(http.StatusOK, models.TravelAdjustmentResponse{
		Success:            true,
		HomeClimate:        home,
		DestinationClimate: destination,
		ClimateChanges:     changes,
		Adjustments:        adjustments,
		AdjustedRoutine:    adjustedRoutine,
	})
}
