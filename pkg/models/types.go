package models

// FrequencyKind は成分の使用頻度の種別です。
type FrequencyKind string

const (
	// FrequencyOnceDaily 1日1回
	FrequencyOnceDaily FrequencyKind = "once_daily"
	// FrequencyTwiceDaily 1日2回（朝・夜）
	FrequencyTwiceDaily FrequencyKind = "twice_daily"
	// FrequencyWeekly 週N回（TimesPerWeekで回数を指定）
	FrequencyWeekly FrequencyKind = "weekly"
)

// Frequency represents how often an ingredient should be applied.
// Weekly frequencies carry the number of applications per week.
type Frequency struct {
	Kind         FrequencyKind `json:"kind"`
	TimesPerWeek int           `json:"times_per_week,omitempty"`
}

// IngredientProfile represents the interaction profile of a known active ingredient.
// Profiles are static lookup data, populated once at startup and never mutated.
type IngredientProfile struct {
	Name               string            `json:"name"`
	Conflicts          []string          `json:"conflicts"`
	WaitingTimeMinutes int               `json:"waiting_time_minutes"`
	Frequency          Frequency         `json:"frequency"`
	ClimateAdjustments map[string]string `json:"climate_adjustments"`
}

// Product represents a single skincare product in a user's routine.
type Product struct {
	Name          string   `json:"name" binding:"required"`
	Ingredients   []string `json:"ingredients"`    // 小文字の成分名リスト
	PreferredTime string   `json:"preferred_time"` // "morning", "evening", "both"
}

// ClimateProfile represents the skincare-relevant climate of a location.
type ClimateProfile struct {
	Humidity       int `json:"humidity"`        // 0-100
	UVIndex        int `json:"uv_index"`        // 0-11+
	PollutionIndex int `json:"pollution_index"` // 0-100+
}

// LocationClimate pairs a location name with its climate profile.
type LocationClimate struct {
	Location string         `json:"location"`
	Climate  ClimateProfile `json:"climate"`
}

// ConflictRecord represents a detected conflict between two products.
// WaitingTimeMinutes is copied from ingredient1's profile.
type ConflictRecord struct {
	Product1           string `json:"product1"`
	Ingredient1        string `json:"ingredient1"`
	Product2           string `json:"product2"`
	Ingredient2        string `json:"ingredient2"`
	WaitingTimeMinutes int    `json:"waiting_time_minutes"`
}

// Graph node/edge type tags.
const (
	NodeTypeProduct    = "product"
	NodeTypeIngredient = "ingredient"
	EdgeTypeContains   = "contains"
	EdgeTypeConflict   = "conflict"
)

// GraphNode represents a product or ingredient in the interaction graph.
type GraphNode struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "product" or "ingredient"
}

// GraphEdge represents a contains- or conflict-relationship between two nodes.
type GraphEdge struct {
	From               string `json:"from"`
	To                 string `json:"to"`
	Type               string `json:"type"` // "contains" or "conflict"
	WaitingTimeMinutes int    `json:"waiting_time_minutes,omitempty"`
}

// InteractionGraph represents the full product/ingredient interaction map.
// 分析呼び出しごとに作り直され、呼び出し側が所有します。
type InteractionGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// DaySchedule represents the morning/evening product assignment of a single day.
type DaySchedule struct {
	Morning []string `json:"morning"`
	Evening []string `json:"evening"`
}

// ClimateChange は自宅と旅行先の気候差の分類タグです。
type ClimateChange string

const (
	ClimateHighHumidity  ClimateChange = "high_humidity"
	ClimateLowHumidity   ClimateChange = "low_humidity"
	ClimateHighUV        ClimateChange = "high_uv"
	ClimateHighPollution ClimateChange = "high_pollution"
)

// ClimateEffects represents general skincare guidance for one climate change tag.
// Increase/Decrease are informational only and are not expanded into
// adjustment records.
type ClimateEffects struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
	Increase    []string `json:"increase"`
	Decrease    []string `json:"decrease"`
}

// Adjustment categories for general climate recommendations.
const (
	AdjustmentRecommended = "recommended"
	AdjustmentAvoid       = "avoid"
)

// AdjustmentRecord represents a single climate-driven routine adjustment.
// Ingredient-specific records carry Product/Ingredient; general records
// carry AdjustmentType instead.
type AdjustmentRecord struct {
	Product        string `json:"product,omitempty"`
	Ingredient     string `json:"ingredient,omitempty"`
	ClimateFactor  string `json:"climate_factor"`
	AdjustmentType string `json:"adjustment_type,omitempty"` // "recommended" or "avoid"
	Adjustment     string `json:"adjustment"`
}

// RoutineAnalysisRequest represents a conflict analysis request.
type RoutineAnalysisRequest struct {
	Products []Product `json:"products" binding:"required"`
}

// RoutineAnalysisResponse represents the result of a conflict analysis.
type RoutineAnalysisResponse struct {
	Success    bool             `json:"success"`
	AnalysisID string           `json:"analysis_id"`
	Conflicts  []ConflictRecord `json:"conflicts"`
	Graph      InteractionGraph `json:"graph"`
	Timestamp  string           `json:"timestamp"`
}

// ScheduleRequest represents a weekly schedule generation request.
type ScheduleRequest struct {
	Products []Product `json:"products" binding:"required"`
	Days     int       `json:"days,omitempty"` // デフォルト: 7
}

// ScheduleResponse represents a generated application schedule.
type ScheduleResponse struct {
	Success  bool                `json:"success"`
	Days     int                 `json:"days"`
	Schedule map[int]DaySchedule `json:"schedule"`
}

// TravelAdjustmentRequest represents a climate adjustment request for a trip.
type TravelAdjustmentRequest struct {
	Products            []Product `json:"products" binding:"required"`
	HomeLocation        string    `json:"home_location" binding:"required"`
	DestinationLocation string    `json:"destination_location" binding:"required"`
}

// TravelAdjustmentResponse represents climate-driven routine adjustments.
type TravelAdjustmentResponse struct {
	Success            bool               `json:"success"`
	HomeClimate        ClimateProfile     `json:"home_climate"`
	DestinationClimate ClimateProfile     `json:"destination_climate"`
	ClimateChanges     []ClimateChange    `json:"climate_changes"`
	Adjustments        []AdjustmentRecord `json:"adjustments"`
	AdjustedRoutine    []Product          `json:"adjusted_routine"`
}

// RoutineImportResponse represents the result of a routine file import.
type RoutineImportResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
	Message  string    `json:"message,omitempty"`
}
