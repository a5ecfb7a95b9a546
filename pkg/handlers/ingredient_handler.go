package handlers

import (
	"net/http"

	"skincare-companion-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// IngredientHandler は成分データベース関連のハンドラです。
type IngredientHandler struct {
	ingredientService *services.IngredientService
}

// NewIngredientHandler は新しいIngredientHandlerを生成します。
func NewIngredientHandler(ingredientService *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// ListIngredients は登録済み成分のプロファイル一覧を返します。
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.ingredientService.KnownIngredients(),
	})
}

// GetCommonIngredients はオートコンプリート用の成分名リストを返します。
func (h *IngredientHandler) GetCommonIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.ingredientService.CommonIngredients(),
	})
}

// GetIngredientProfile は成分名からプロファイルを返します。
func (h *IngredientHandler) GetIngredientProfile(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nameパラメータが必要です。"})
		return
	}

	profile, ok := h.ingredientService.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "成分が登録されていません: " + name,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}
