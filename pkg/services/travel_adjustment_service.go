package services

import (
	"strings"

	"skincare-companion-api/pkg/models"
)

// 気候変化タグの固定評価順。per-ingredient調整の列挙順もこれに従います。
var climateChangeOrder = []models.ClimateChange{
	models.ClimateHighHumidity,
	models.ClimateLowHumidity,
	models.ClimateHighUV,
	models.ClimateHighPollution,
}

// 分類しきい値（旅行先 vs 自宅）
const (
	humidityThreshold  = 20
	uvThreshold        = 2
	pollutionThreshold = 20
)

// TravelAdjustmentService は気候差に基づくルーチン調整を提供します。
type TravelAdjustmentService struct {
	ingredients *IngredientService
	climate     *ClimateService
}

// NewTravelAdjustmentService は新しいTravelAdjustmentServiceを生成します。
func NewTravelAdjustmentService(ingredients *IngredientService, climate *ClimateService) *TravelAdjustmentService {
	return &TravelAdjustmentService{
		ingredients: ingredients,
		climate:     climate,
	}
}

// ClassifyClimateChanges は自宅と旅行先の気候差を固定しきい値で分類します。
// 湿度タグは高低どちらか一方のみ、UV・大気汚染タグは独立に判定されます。
func (s *TravelAdjustmentService) ClassifyClimateChanges(home, destination models.ClimateProfile) []models.ClimateChange {
	changes := make([]models.ClimateChange, 0, len(climateChangeOrder))

	if destination.Humidity-home.Humidity > humidityThreshold {
		changes = append(changes, models.ClimateHighHumidity)
	} else if home.Humidity-destination.Humidity > humidityThreshold {
		changes = append(changes, models.ClimateLowHumidity)
	}

	if destination.UVIndex-home.UVIndex > uvThreshold {
		changes = append(changes, models.ClimateHighUV)
	}

	if destination.PollutionIndex-home.PollutionIndex > pollutionThreshold {
		changes = append(changes, models.ClimateHighPollution)
	}

	return changes
}

// AdjustForClimate は気候差の分類と、それに応じた成分別・一般の調整を返します。
// 製品リストはそのままadjusted routineとして返されます（副作用なし）。
func (s *TravelAdjustmentService) AdjustForClimate(products []models.Product, home, destination models.ClimateProfile) ([]models.ClimateChange, []models.AdjustmentRecord, []models.Product) {
	changes := s.ClassifyClimateChanges(home, destination)
	adjustments := make([]models.AdjustmentRecord, 0)

	// 成分別の調整: 製品 → 有効成分 → 発火したタグ の順に列挙
	for _, product := range products {
		for _, ingredient := range s.ingredients.ActiveIngredients(product) {
			profile, _ := s.ingredients.Lookup(ingredient)
			for _, change := range changes {
				if directive, ok := profile.ClimateAdjustments[string(change)]; ok {
					adjustments = append(adjustments, models.AdjustmentRecord{
						Product:       product.Name,
						Ingredient:    strings.ToLower(ingredient),
						ClimateFactor: string(change),
						Adjustment:    directive,
					})
				}
			}
		}
	}

	// 一般的な調整: recommended/avoidのみレコード化（increase/decreaseは参考情報）
	for _, change := range changes {
		effects, ok := s.climate.Effects(change)
		if !ok {
			continue
		}
		for _, item := range effects.Recommended {
			adjustments = append(adjustments, models.AdjustmentRecord{
				ClimateFactor:  string(change),
				AdjustmentType: models.AdjustmentRecommended,
				Adjustment:     item,
			})
		}
		for _, item := range effects.Avoid {
			adjustments = append(adjustments, models.AdjustmentRecord{
				ClimateFactor:  string(change),
				AdjustmentType: models.AdjustmentAvoid,
				Adjustment:     item,
			})
		}
	}

	adjustedRoutine := make([]models.Product, len(products))
	copy(adjustedRoutine, products)

	return changes, adjustments, adjustedRoutine
}
