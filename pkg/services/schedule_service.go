package services

import (
	"skincare-companion-api/pkg/models"
)

// DefaultScheduleDays は週間スケジュールの既定日数です。
const DefaultScheduleDays = 7

// ScheduleService は製品の使用頻度に基づく週間スケジュール生成を提供します。
type ScheduleService struct {
	ingredients *IngredientService
}

// NewScheduleService は新しいScheduleServiceを生成します。
func NewScheduleService(ingredients *IngredientService) *ScheduleService {
	return &ScheduleService{ingredients: ingredients}
}

// BuildSchedule は1..daysの各日について朝・夜の製品割り当てを生成します。
// daysが0以下の場合は既定の7日になります。
//
// 各製品は最初の登録済み成分（governing ingredient）の頻度に従います。
// once dailyのスロットはユーザーの希望時間帯ではなく成分で決まります:
// retinolとglycolic acidは光感受性のため夜、それ以外は朝です。
func (s *ScheduleService) BuildSchedule(products []models.Product, days int) map[int]models.DaySchedule {
	if days <= 0 {
		days = DefaultScheduleDays
	}

	schedule := make(map[int]models.DaySchedule, days)
	for day := 1; day <= days; day++ {
		schedule[day] = models.DaySchedule{
			Morning: make([]string, 0),
			Evening: make([]string, 0),
		}
	}

	appendTo := func(day int, slot string, name string) {
		entry := schedule[day]
		if slot == "morning" {
			entry.Morning = append(entry.Morning, name)
		} else {
			entry.Evening = append(entry.Evening, name)
		}
		schedule[day] = entry
	}

	for _, product := range products {
		active := s.ingredients.ActiveIngredients(product)

		if len(active) == 0 {
			// 有効成分のない製品は希望時間帯どおり毎日使用できる
			for day := 1; day <= days; day++ {
				if product.PreferredTime == "morning" || product.PreferredTime == "both" {
					appendTo(day, "morning", product.Name)
				}
				if product.PreferredTime == "evening" || product.PreferredTime == "both" {
					appendTo(day, "evening", product.Name)
				}
			}
			continue
		}

		// スロット判定はルックアップと同じ正規化済みの名前（profile.Name）で行う
		profile, _ := s.ingredients.Lookup(active[0])

		switch profile.Frequency.Kind {
		case models.FrequencyTwiceDaily:
			for day := 1; day <= days; day++ {
				appendTo(day, "morning", product.Name)
				appendTo(day, "evening", product.Name)
			}
		case models.FrequencyOnceDaily:
			slot := slotForIngredient(profile.Name)
			for day := 1; day <= days; day++ {
				appendTo(day, slot, product.Name)
			}
		case models.FrequencyWeekly:
			interval := days / profile.Frequency.TimesPerWeek
			if interval < 1 {
				interval = 1
			}
			slot := slotForIngredient(profile.Name)
			for day := 1; day <= days; day += interval {
				appendTo(day, slot, product.Name)
			}
		}
	}

	return schedule
}

// slotForIngredient はonce daily/weeklyの製品を置くスロットを成分から決めます。
func slotForIngredient(ingredient string) string {
	if ingredient == "retinol" || ingredient == "glycolic acid" {
		return "evening"
	}
	return "morning"
}
