package services

import (
	"sort"

	"skincare-companion-api/pkg/models"
)

// DefaultClimateProfile は未登録の地域に対して返される既定の気候プロファイルです。
var DefaultClimateProfile = models.ClimateProfile{
	Humidity:       50,
	UVIndex:        5,
	PollutionIndex: 40,
}

// ClimateService は地域名から気候プロファイルへのルックアップを提供します。
// 外部の気象APIは呼び出さないシミュレーションスタブであり、呼び出し側は
// 同じ契約（存在しない地域 → 既定プロファイル）を持つライブデータ源に
// 置き換えられます。
type ClimateService struct {
	locations map[string]models.ClimateProfile
	effects   map[models.ClimateChange]models.ClimateEffects
}

// NewClimateService は組み込みの気候データテーブルを構築します。
func NewClimateService() *ClimateService {
	locations := map[string]models.ClimateProfile{
		"New York":    {Humidity: 60, UVIndex: 5, PollutionIndex: 40},
		"Los Angeles": {Humidity: 50, UVIndex: 8, PollutionIndex: 60},
		"Miami":       {Humidity: 80, UVIndex: 9, PollutionIndex: 30},
		"Denver":      {Humidity: 25, UVIndex: 7, PollutionIndex: 20},
		"Seattle":     {Humidity: 70, UVIndex: 4, PollutionIndex: 25},
		"Phoenix":     {Humidity: 20, UVIndex: 10, PollutionIndex: 45},
		"Chicago":     {Humidity: 55, UVIndex: 5, PollutionIndex: 50},
		"Honolulu":    {Humidity: 75, UVIndex: 10, PollutionIndex: 15},
		"Tokyo":       {Humidity: 65, UVIndex: 6, PollutionIndex: 70},
		"London":      {Humidity: 75, UVIndex: 3, PollutionIndex: 45},
		"Dubai":       {Humidity: 60, UVIndex: 11, PollutionIndex: 65},
		"Sydney":      {Humidity: 60, UVIndex: 9, PollutionIndex: 25},
	}

	// 気候変化ごとの一般的なスキンケア指針
	effects := map[models.ClimateChange]models.ClimateEffects{
		models.ClimateHighHumidity: {
			Recommended: []string{"lightweight moisturizer", "oil-free", "mattifying"},
			Avoid:       []string{"heavy oils", "thick creams", "oil-based products"},
			Increase:    []string{"exfoliation"},
			Decrease:    []string{"heavy hydration"},
		},
		models.ClimateLowHumidity: {
			Recommended: []string{"rich moisturizer", "facial oils", "hydrating masks"},
			Avoid:       []string{"harsh cleansers", "alcohol-based products"},
			Increase:    []string{"hydration layers"},
			Decrease:    []string{"exfoliation frequency"},
		},
		models.ClimateHighUV: {
			Recommended: []string{"sunscreen", "antioxidants", "vitamin C"},
			Avoid:       []string{"photosensitizing ingredients during day"},
			Increase:    []string{"sun protection"},
			Decrease:    []string{"exfoliation"},
		},
		models.ClimateHighPollution: {
			Recommended: []string{"double cleansing", "antioxidants", "barrier repair"},
			Avoid:       []string{"skip cleansing"},
			Increase:    []string{"antioxidant protection"},
			Decrease:    []string{},
		},
	}

	return &ClimateService{
		locations: locations,
		effects:   effects,
	}
}

// GetClimateData は地域名から気候プロファイルを取得します。
// 完全一致（大文字小文字を区別）で検索し、見つからない場合は
// エラーではなく既定プロファイルを返します。
func (s *ClimateService) GetClimateData(location string) models.ClimateProfile {
	if profile, ok := s.locations[location]; ok {
		return profile
	}
	return DefaultClimateProfile
}

// Locations は登録済みの地域と気候プロファイルの一覧を地域名順で返します。
func (s *ClimateService) Locations() []models.LocationClimate {
	names := make([]string, 0, len(s.locations))
	for name := range s.locations {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]models.LocationClimate, 0, len(names))
	for _, name := range names {
		list = append(list, models.LocationClimate{Location: name, Climate: s.locations[name]})
	}
	return list
}

// Effects は気候変化タグに対応する一般的な指針テーブルを返します。
func (s *ClimateService) Effects(change models.ClimateChange) (models.ClimateEffects, bool) {
	effects, ok := s.effects[change]
	return effects, ok
}
