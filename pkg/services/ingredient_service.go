package services

import (
	"fmt"
	"sort"
	"strings"

	"skincare-companion-api/pkg/models"
)

// IngredientService はスキンケア成分の相互作用データベースを提供します。
// テーブルは起動時に一度だけ構築され、以降は読み取り専用です。
type IngredientService struct {
	profiles map[string]models.IngredientProfile
	common   []string
}

// NewIngredientService は組み込みの成分データベースを構築します。
// 週次頻度の回数が不正な場合はテーブル自体が壊れていることを意味するため、
// ここでpanicします（ユーザー入力では到達しない）。
func NewIngredientService() *IngredientService {
	profiles := map[string]models.IngredientProfile{
		"retinol": {
			Name:               "retinol",
			Conflicts:          []string{"glycolic acid", "salicylic acid", "vitamin c", "benzoyl peroxide"},
			WaitingTimeMinutes: 30,
			Frequency:          models.Frequency{Kind: models.FrequencyOnceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "reduce concentration",
				"low_humidity":   "add moisturizer after",
				"high_uv":        "night only",
				"high_pollution": "follow with antioxidants",
			},
		},
		"vitamin c": {
			Name:               "vitamin c",
			Conflicts:          []string{"retinol", "glycolic acid", "niacinamide"},
			WaitingTimeMinutes: 15,
			Frequency:          models.Frequency{Kind: models.FrequencyOnceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "lighter formulation",
				"low_humidity":   "standard application",
				"high_uv":        "morning application",
				"high_pollution": "increase frequency",
			},
		},
		"niacinamide": {
			Name:               "niacinamide",
			Conflicts:          []string{"vitamin c"},
			WaitingTimeMinutes: 10,
			Frequency:          models.Frequency{Kind: models.FrequencyTwiceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "use with hyaluronic acid",
				"high_uv":        "combine with sunscreen",
				"high_pollution": "standard application",
			},
		},
		"hyaluronic acid": {
			Name:               "hyaluronic acid",
			Conflicts:          []string{},
			WaitingTimeMinutes: 1,
			Frequency:          models.Frequency{Kind: models.FrequencyTwiceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "apply to damp skin",
				"high_uv":        "standard application",
				"high_pollution": "standard application",
			},
		},
		"glycolic acid": {
			Name:               "glycolic acid",
			Conflicts:          []string{"retinol", "vitamin c", "salicylic acid"},
			WaitingTimeMinutes: 20,
			Frequency:          models.Frequency{Kind: models.FrequencyWeekly, TimesPerWeek: 2},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "reduce frequency",
				"high_uv":        "night only",
				"high_pollution": "standard application",
			},
		},
		"salicylic acid": {
			Name:               "salicylic acid",
			Conflicts:          []string{"retinol", "glycolic acid"},
			WaitingTimeMinutes: 20,
			Frequency:          models.Frequency{Kind: models.FrequencyWeekly, TimesPerWeek: 2},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "reduce frequency",
				"high_uv":        "night only",
				"high_pollution": "standard application",
			},
		},
		"benzoyl peroxide": {
			Name:               "benzoyl peroxide",
			Conflicts:          []string{"retinol", "vitamin c"},
			WaitingTimeMinutes: 20,
			Frequency:          models.Frequency{Kind: models.FrequencyOnceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "follow with moisturizer",
				"high_uv":        "night only",
				"high_pollution": "standard application",
			},
		},
		"azelaic acid": {
			Name:               "azelaic acid",
			Conflicts:          []string{},
			WaitingTimeMinutes: 10,
			Frequency:          models.Frequency{Kind: models.FrequencyTwiceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "standard application",
				"high_uv":        "standard application",
				"high_pollution": "standard application",
			},
		},
		"peptides": {
			Name:               "peptides",
			Conflicts:          []string{"acids"},
			WaitingTimeMinutes: 10,
			Frequency:          models.Frequency{Kind: models.FrequencyTwiceDaily},
			ClimateAdjustments: map[string]string{
				"high_humidity":  "standard application",
				"low_humidity":   "standard application",
				"high_uv":        "standard application",
				"high_pollution": "standard application",
			},
		},
	}

	for name, profile := range profiles {
		if profile.Frequency.Kind == models.FrequencyWeekly && profile.Frequency.TimesPerWeek < 1 {
			panic(fmt.Sprintf("ingredient table corrupt: %s has weekly frequency with times_per_week=%d", name, profile.Frequency.TimesPerWeek))
		}
	}

	// オートコンプリート用の一般的な成分リスト（登録済み成分＋よく使われる成分）
	common := make([]string, 0, len(profiles)+15)
	for name := range profiles {
		common = append(common, name)
	}
	sort.Strings(common)
	common = append(common,
		"ceramides", "squalane", "glycerin", "panthenol", "centella asiatica",
		"green tea extract", "aloe vera", "allantoin", "urea", "lactic acid",
		"mandelic acid", "zinc oxide", "titanium dioxide", "bakuchiol", "coenzyme q10",
	)

	return &IngredientService{
		profiles: profiles,
		common:   common,
	}
}

// Lookup は成分名からプロファイルを検索します。
// 名前は小文字に正規化され、完全一致のみです。未登録はエラーではなく
// 「制約なし」として扱われます。
func (s *IngredientService) Lookup(name string) (models.IngredientProfile, bool) {
	profile, ok := s.profiles[strings.ToLower(name)]
	return profile, ok
}

// IsRegistered は成分が相互作用データベースに登録されているかを返します。
func (s *IngredientService) IsRegistered(name string) bool {
	_, ok := s.profiles[strings.ToLower(name)]
	return ok
}

// ActiveIngredients は製品の成分のうち登録済みのものを、製品内の順序を
// 保ったまま返します。
func (s *IngredientService) ActiveIngredients(product models.Product) []string {
	active := make([]string, 0, len(product.Ingredients))
	for _, ingredient := range product.Ingredients {
		if s.IsRegistered(ingredient) {
			active = append(active, ingredient)
		}
	}
	return active
}

// KnownIngredients は登録済み成分のプロファイル一覧を名前順で返します。
func (s *IngredientService) KnownIngredients() []models.IngredientProfile {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]models.IngredientProfile, 0, len(names))
	for _, name := range names {
		list = append(list, s.profiles[name])
	}
	return list
}

// CommonIngredients はオートコンプリート用の成分名リストを返します。
func (s *IngredientService) CommonIngredients() []string {
	return s.common
}

// SampleRoutine はデモ用のサンプル製品リストを返します。
func (s *IngredientService) SampleRoutine() []models.Product {
	return []models.Product{
		{
			Name:          "Gentle Cleanser",
			Ingredients:   []string{"glycerin", "panthenol"},
			PreferredTime: "both",
		},
		{
			Name:          "Vitamin C Serum",
			Ingredients:   []string{"vitamin c", "ferulic acid"},
			PreferredTime: "morning",
		},
		{
			Name:          "Retinol Night Cream",
			Ingredients:   []string{"retinol", "ceramides"},
			PreferredTime: "evening",
		},
		{
			Name:          "Hyaluronic Acid Serum",
			Ingredients:   []string{"hyaluronic acid", "glycerin"},
			PreferredTime: "both",
		},
		{
			Name:          "AHA Exfoliant",
			Ingredients:   []string{"glycolic acid", "lactic acid"},
			PreferredTime: "evening",
		},
	}
}
