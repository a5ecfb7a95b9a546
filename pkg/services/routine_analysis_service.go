package services

import (
	"slices"
	"strings"

	"skincare-companion-api/pkg/models"
)

// RoutineAnalysisService はスキンケアルーチンの成分コンフリクト分析を提供します。
type RoutineAnalysisService struct {
	ingredients *IngredientService
}

// NewRoutineAnalysisService は新しいRoutineAnalysisServiceを生成します。
func NewRoutineAnalysisService(ingredients *IngredientService) *RoutineAnalysisService {
	return &RoutineAnalysisService{ingredients: ingredients}
}

// AnalyzeRoutine は製品リスト内のコンフリクトを検出し、相互作用グラフを構築します。
// すべての順序付き製品ペアを走査するため、互いにコンフリクトを登録している
// 成分ペアは方向ごとに1件ずつ（それぞれの待機時間で）報告されます。
func (s *RoutineAnalysisService) AnalyzeRoutine(products []models.Product) ([]models.ConflictRecord, models.InteractionGraph) {
	conflicts := make([]models.ConflictRecord, 0)

	for _, product1 := range products {
		for _, ingredient1 := range product1.Ingredients {
			profile, ok := s.ingredients.Lookup(ingredient1)
			if !ok {
				continue
			}
			for _, product2 := range products {
				// 同一内容の製品同士は比較しない（名前だけでなく値全体で比較）
				if productsEqual(product1, product2) {
					continue
				}
				for _, ingredient2 := range product2.Ingredients {
					// 比較・レコードとも正規化済みの小文字名で統一
					name2 := strings.ToLower(ingredient2)
					if slices.Contains(profile.Conflicts, name2) {
						conflicts = append(conflicts, models.ConflictRecord{
							Product1:           product1.Name,
							Ingredient1:        profile.Name,
							Product2:           product2.Name,
							Ingredient2:        name2,
							WaitingTimeMinutes: profile.WaitingTimeMinutes,
						})
					}
				}
			}
		}
	}

	return conflicts, s.buildGraph(products, conflicts)
}

// buildGraph は製品・成分ノードとcontains/conflictエッジからなるグラフを構築します。
// コンフリクトエッジは成分ペアごとに1本のみで、同じペアへの再追加は
// 待機時間の上書き（last-write-wins）になります。
func (s *RoutineAnalysisService) buildGraph(products []models.Product, conflicts []models.ConflictRecord) models.InteractionGraph {
	graph := models.InteractionGraph{
		Nodes: make([]models.GraphNode, 0),
		Edges: make([]models.GraphEdge, 0),
	}
	nodeSeen := make(map[string]bool)

	addNode := func(id, nodeType string) {
		if !nodeSeen[id] {
			nodeSeen[id] = true
			graph.Nodes = append(graph.Nodes, models.GraphNode{ID: id, Type: nodeType})
		}
	}

	// containsエッジも(製品, 成分)ペアごとに1本のみ。成分の重複記載は
	// グラフに追加の効果を持たない
	containsSeen := make(map[[2]string]bool)
	for _, product := range products {
		addNode(product.Name, models.NodeTypeProduct)
		for _, ingredient := range product.Ingredients {
			// 未登録の成分もノードとしては現れる
			name := strings.ToLower(ingredient)
			addNode(name, models.NodeTypeIngredient)
			key := [2]string{product.Name, name}
			if containsSeen[key] {
				continue
			}
			containsSeen[key] = true
			graph.Edges = append(graph.Edges, models.GraphEdge{
				From: product.Name,
				To:   name,
				Type: models.EdgeTypeContains,
			})
		}
	}

	// コンフリクトエッジ（無向ペアで重複排除）
	conflictEdgeIndex := make(map[[2]string]int)
	for _, conflict := range conflicts {
		if !nodeSeen[conflict.Ingredient1] || !nodeSeen[conflict.Ingredient2] {
			continue
		}
		key := [2]string{conflict.Ingredient1, conflict.Ingredient2}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if idx, ok := conflictEdgeIndex[key]; ok {
			graph.Edges[idx].WaitingTimeMinutes = conflict.WaitingTimeMinutes
			continue
		}
		graph.Edges = append(graph.Edges, models.GraphEdge{
			From:               conflict.Ingredient1,
			To:                 conflict.Ingredient2,
			Type:               models.EdgeTypeConflict,
			WaitingTimeMinutes: conflict.WaitingTimeMinutes,
		})
		conflictEdgeIndex[key] = len(graph.Edges) - 1
	}

	return graph
}

// productsEqual は製品を値全体（名前・成分列・使用時間帯）で比較します。
func productsEqual(a, b models.Product) bool {
	return a.Name == b.Name &&
		a.PreferredTime == b.PreferredTime &&
		slices.Equal(a.Ingredients, b.Ingredients)
}
