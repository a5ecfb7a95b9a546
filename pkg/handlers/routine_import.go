package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"

	"skincare-companion-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportRoutineFile はアップロードされた製品リストファイル（.xlsx/.csv）を
// 解析して製品リストを返します。結果は保存されず、クライアントが
// analyze/scheduleへそのまま渡せる形式です。
func (h *RoutineHandler) ImportRoutineFile(c *gin.Context) {
	c.Request.ParseMultipartForm(10 << 20) // 10MB limit

	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ファイルの取得に失敗しました。"})
		return
	}
	defer file.Close()

	var rows [][]string
	fileName := fileHeader.Filename

	if strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		f, err := excelize.OpenReader(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excelファイルの読み込みに失敗しました。"})
			return
		}
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excelシートの行取得に失敗しました。"})
			return
		}
	} else if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		r := csv.NewReader(file)
		rows, err = r.ReadAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "CSVファイルの解析に失敗しました。"})
			return
		}
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "サポートされていないファイル形式です。.xlsxまたは.csvをアップロードしてください。"})
		return
	}

	if len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ファイルにはヘッダー行と少なくとも1行のデータが必要です。"})
		return
	}

	header := rows[0]
	dataRows := rows[1:]

	// 列インデックスを検出
	nameColIdx := findIndex(header, "name", "product", "product_name", "製品名", "製品", "商品名")
	ingredientsColIdx := findIndex(header, "ingredients", "成分")
	timeColIdx := findIndex(header, "preferred_time", "time", "使用時間帯", "時間帯")

	var missingCols []string
	if nameColIdx == -1 {
		missingCols = append(missingCols, "製品名")
	}
	if ingredientsColIdx == -1 {
		missingCols = append(missingCols, "成分")
	}
	if len(missingCols) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("必須の列が見つかりません: %s", strings.Join(missingCols, ", ")),
		})
		return
	}

	products := make([]models.Product, 0, len(dataRows))
	skipped := 0
	for _, row := range dataRows {
		if nameColIdx >= len(row) || ingredientsColIdx >= len(row) {
			skipped++
			continue
		}
		name := strings.TrimSpace(row[nameColIdx])
		if name == "" {
			skipped++
			continue
		}

		preferredTime := "both"
		if timeColIdx != -1 && timeColIdx < len(row) {
			if t := normalizePreferredTime(row[timeColIdx]); t != "" {
				preferredTime = t
			}
		}

		products = append(products, models.Product{
			Name:          name,
			Ingredients:   parseIngredientList(row[ingredientsColIdx]),
			PreferredTime: preferredTime,
		})
	}

	log.Printf("📦 [ルーチンインポート] %s: %d件の製品を読み込み（%d行スキップ）", fileName, len(products), skipped)

	c.JSON(http.StatusOK, models.RoutineImportResponse{
		Success:  true,
		Products: products,
		Count:    len(products),
	})
}

// parseIngredientList はカンマ区切りの成分セルを小文字の成分名リストに変換します。
func parseIngredientList(cell string) []string {
	normalized := strings.NewReplacer("、", ",", "；", ",", ";", ",").Replace(cell)
	parts := strings.Split(normalized, ",")

	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if ingredient := strings.ToLower(strings.TrimSpace(part)); ingredient != "" {
			ingredients = append(ingredients, ingredient)
		}
	}
	return ingredients
}

// normalizePreferredTime は使用時間帯セルを"morning"/"evening"/"both"に正規化します。
func normalizePreferredTime(cell string) string {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "morning", "朝":
		return "morning"
	case "evening", "night", "夜":
		return "evening"
	case "both", "朝夜", "両方":
		return "both"
	default:
		return ""
	}
}
