package services

import (
	"testing"

	"skincare-companion-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func newAdjustmentService() *TravelAdjustmentService {
	return NewTravelAdjustmentService(NewIngredientService(), NewClimateService())
}

func TestClassifyClimateChanges(t *testing.T) {
	service := newAdjustmentService()

	home := models.ClimateProfile{Humidity: 60, UVIndex: 5, PollutionIndex: 40}
	destination := models.ClimateProfile{Humidity: 85, UVIndex: 9, PollutionIndex: 30}

	changes := service.ClassifyClimateChanges(home, destination)
	assert.Equal(t, []models.ClimateChange{models.ClimateHighHumidity, models.ClimateHighUV}, changes)
}

func TestClassifyClimateChangesBorderline(t *testing.T) {
	service := newAdjustmentService()

	// 湿度差ちょうど20は「>20」を満たさないのでタグは付かない
	home := models.ClimateProfile{Humidity: 60, UVIndex: 5, PollutionIndex: 40}
	destination := models.ClimateProfile{Humidity: 80, UVIndex: 9, PollutionIndex: 30}

	changes := service.ClassifyClimateChanges(home, destination)
	assert.Equal(t, []models.ClimateChange{models.ClimateHighUV}, changes)
}

func TestClassifyLowHumidityAndPollution(t *testing.T) {
	service := newAdjustmentService()

	home := models.ClimateProfile{Humidity: 70, UVIndex: 4, PollutionIndex: 25}
	destination := models.ClimateProfile{Humidity: 20, UVIndex: 6, PollutionIndex: 70}

	changes := service.ClassifyClimateChanges(home, destination)
	assert.Equal(t, []models.ClimateChange{models.ClimateLowHumidity, models.ClimateHighPollution}, changes)
}

func TestClassifyNoChanges(t *testing.T) {
	service := newAdjustmentService()

	profile := models.ClimateProfile{Humidity: 55, UVIndex: 5, PollutionIndex: 40}
	changes := service.ClassifyClimateChanges(profile, profile)
	assert.Empty(t, changes)
}

func TestAdjustForClimateIngredientSpecific(t *testing.T) {
	service := newAdjustmentService()

	products := []models.Product{
		{Name: "Retinol Night Cream", Ingredients: []string{"retinol", "ceramides"}, PreferredTime: "evening"},
	}
	home := models.ClimateProfile{Humidity: 60, UVIndex: 5, PollutionIndex: 40}
	destination := models.ClimateProfile{Humidity: 85, UVIndex: 9, PollutionIndex: 30}

	changes, adjustments, _ := service.AdjustForClimate(products, home, destination)
	assert.Equal(t, []models.ClimateChange{models.ClimateHighHumidity, models.ClimateHighUV}, changes)

	// retinolのhigh_humidity調整はちょうど1回現れる
	specific := make([]models.AdjustmentRecord, 0)
	for _, adjustment := range adjustments {
		if adjustment.Ingredient != "" {
			specific = append(specific, adjustment)
		}
	}
	assert.Equal(t, []models.AdjustmentRecord{
		{Product: "Retinol Night Cream", Ingredient: "retinol", ClimateFactor: "high_humidity", Adjustment: "reduce concentration"},
		{Product: "Retinol Night Cream", Ingredient: "retinol", ClimateFactor: "high_uv", Adjustment: "night only"},
	}, specific)
}

func TestAdjustForClimateGeneralRecommendations(t *testing.T) {
	service := newAdjustmentService()

	// UVのみが変化するケース
	home := models.ClimateProfile{Humidity: 60, UVIndex: 3, PollutionIndex: 40}
	destination := models.ClimateProfile{Humidity: 60, UVIndex: 10, PollutionIndex: 40}

	_, adjustments, _ := service.AdjustForClimate([]models.Product{}, home, destination)

	// recommended 3件 → avoid 1件 の順
	assert.Equal(t, []models.AdjustmentRecord{
		{ClimateFactor: "high_uv", AdjustmentType: models.AdjustmentRecommended, Adjustment: "sunscreen"},
		{ClimateFactor: "high_uv", AdjustmentType: models.AdjustmentRecommended, Adjustment: "antioxidants"},
		{ClimateFactor: "high_uv", AdjustmentType: models.AdjustmentRecommended, Adjustment: "vitamin C"},
		{ClimateFactor: "high_uv", AdjustmentType: models.AdjustmentAvoid, Adjustment: "photosensitizing ingredients during day"},
	}, adjustments)
}

func TestAdjustForClimateNoChangesNoAdjustments(t *testing.T) {
	service := newAdjustmentService()

	products := []models.Product{
		{Name: "Retinol Night Cream", Ingredients: []string{"retinol"}, PreferredTime: "evening"},
	}
	profile := models.ClimateProfile{Humidity: 60, UVIndex: 5, PollutionIndex: 40}

	changes, adjustments, routine := service.AdjustForClimate(products, profile, profile)

	assert.Empty(t, changes)
	assert.Empty(t, adjustments)
	assert.Equal(t, products, routine)
}

func TestAdjustForClimateRoutinePassthrough(t *testing.T) {
	service := newAdjustmentService()

	products := []models.Product{
		{Name: "Vitamin C Serum", Ingredients: []string{"vitamin c"}, PreferredTime: "morning"},
		{Name: "Gentle Cleanser", Ingredients: []string{"glycerin"}, PreferredTime: "both"},
	}
	home := models.ClimateProfile{Humidity: 60, UVIndex: 5, PollutionIndex: 40}
	destination := models.ClimateProfile{Humidity: 85, UVIndex: 9, PollutionIndex: 30}

	_, _, routine := service.AdjustForClimate(products, home, destination)
	assert.Equal(t, products, routine)
}
