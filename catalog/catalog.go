// Package catalog declares the eight study-planner tool descriptors exposed
// over MCP. The catalog is static: the descriptor list, its order, and each
// tool's required fields and enums are stable for the process lifetime.
package catalog

import (
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/studyplanner/plan"
)

// Tool names. These are the wire-level identifiers clients invoke.
const (
	AddDailyPlan    = "add_daily_plan"
	AddWeeklyPlan   = "add_weekly_plan"
	AddMonthlyGoal  = "add_monthly_goal"
	GetDailyPlans   = "get_daily_plans"
	GetWeeklyPlans  = "get_weekly_plans"
	GetMonthlyGoals = "get_monthly_goals"
	CompletePlan    = "complete_plan"
	DeletePlan      = "delete_plan"
)

// Tools returns the catalog in its fixed order. The slice is freshly built
// on every call; callers may mutate it freely.
func Tools() []model.Tool {
	return []model.Tool{
		tool(AddDailyPlan, "일일 학습 계획을 추가합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId":  map[string]any{"type": "string", "description": "사용자 ID"},
				"date":    map[string]any{"type": "string", "description": "날짜 (YYYY-MM-DD 형식)"},
				"title":   map[string]any{"type": "string", "description": "계획 제목"},
				"subject": map[string]any{"type": "string", "description": "과목 (선택사항)", "default": ""},
				"notes":   map[string]any{"type": "string", "description": "메모 (선택사항)", "default": ""},
			},
			"required": []string{"userId", "date", "title"},
		}),
		tool(AddWeeklyPlan, "주간 학습 계획을 추가합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId":  map[string]any{"type": "string", "description": "사용자 ID"},
				"date":    map[string]any{"type": "string", "description": "날짜 (YYYY-MM-DD 형식)"},
				"title":   map[string]any{"type": "string", "description": "계획 제목"},
				"subject": map[string]any{"type": "string", "description": "과목 (선택사항)", "default": ""},
				"pageRanges": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "페이지 범위 (예: [\"45-67\", \"100-120\"])",
					"default":     []string{},
				},
				"notes": map[string]any{"type": "string", "description": "메모 (선택사항)", "default": ""},
			},
			"required": []string{"userId", "date", "title"},
		}),
		tool(AddMonthlyGoal, "월간 목표를 추가합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId":  map[string]any{"type": "string", "description": "사용자 ID"},
				"month":   map[string]any{"type": "string", "description": "월 (YYYY-MM 형식)"},
				"title":   map[string]any{"type": "string", "description": "목표 제목"},
				"subject": map[string]any{"type": "string", "description": "과목 (선택사항)", "default": ""},
				"endDate": map[string]any{"type": "string", "description": "목표 종료일 (YYYY-MM-DD 형식, 선택사항)"},
				"priority": map[string]any{
					"type":        "number",
					"description": "우선순위 (1: 높음, 2: 중간, 3: 낮음)",
					"default":     2,
					"enum":        []int{1, 2, 3},
				},
				"notes": map[string]any{"type": "string", "description": "메모 (선택사항)", "default": ""},
			},
			"required": []string{"userId", "month", "title"},
		}),
		tool(GetDailyPlans, "특정 날짜의 일일 계획을 조회합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId": map[string]any{"type": "string", "description": "사용자 ID"},
				"date":   map[string]any{"type": "string", "description": "날짜 (YYYY-MM-DD 형식)"},
			},
			"required": []string{"userId", "date"},
		}),
		tool(GetWeeklyPlans, "특정 주의 주간 계획을 조회합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId":    map[string]any{"type": "string", "description": "사용자 ID"},
				"startDate": map[string]any{"type": "string", "description": "주 시작일 (YYYY-MM-DD 형식)"},
				"endDate":   map[string]any{"type": "string", "description": "주 종료일 (YYYY-MM-DD 형식)"},
			},
			"required": []string{"userId", "startDate", "endDate"},
		}),
		tool(GetMonthlyGoals, "특정 월의 월간 목표를 조회합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userId": map[string]any{"type": "string", "description": "사용자 ID"},
				"month":  map[string]any{"type": "string", "description": "월 (YYYY-MM 형식)"},
			},
			"required": []string{"userId", "month"},
		}),
		tool(CompletePlan, "계획을 완료 상태로 변경합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"collection": map[string]any{
					"type":        "string",
					"description": "컬렉션 이름 (dailyPlans, weeklyPlans, monthlyPlans)",
					"enum":        collectionNames(),
				},
				"planId": map[string]any{"type": "string", "description": "계획 ID"},
			},
			"required": []string{"collection", "planId"},
		}),
		tool(DeletePlan, "계획을 삭제합니다", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"collection": map[string]any{
					"type":        "string",
					"description": "컬렉션 이름 (dailyPlans, weeklyPlans, monthlyPlans)",
					"enum":        collectionNames(),
				},
				"planId": map[string]any{"type": "string", "description": "계획 ID"},
			},
			"required": []string{"collection", "planId"},
		}),
	}
}

// Lookup returns the descriptor for name.
func Lookup(name string) (model.Tool, bool) {
	for _, t := range Tools() {
		if t.Name == name {
			return t, true
		}
	}
	return model.Tool{}, false
}

func tool(name, description string, inputSchema map[string]any) model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        name,
			Description: description,
			InputSchema: inputSchema,
		},
	}
}

func collectionNames() []string {
	collections := plan.Collections()
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, string(c))
	}
	return names
}
