package catalog

import (
	"testing"
)

func TestToolsOrder(t *testing.T) {
	want := []string{
		AddDailyPlan,
		AddWeeklyPlan,
		AddMonthlyGoal,
		GetDailyPlans,
		GetWeeklyPlans,
		GetMonthlyGoals,
		CompletePlan,
		DeletePlan,
	}

	tools := Tools()
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, tools[i].Name)
		}
	}
}

func TestToolsStable(t *testing.T) {
	first := Tools()
	second := Tools()
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("catalog order changed between calls at %d", i)
		}
	}
}

func TestToolsValid(t *testing.T) {
	for _, tool := range Tools() {
		if err := tool.Validate(); err != nil {
			t.Errorf("tool %s invalid: %v", tool.Name, err)
		}
		if tool.Description == "" {
			t.Errorf("tool %s missing description", tool.Name)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	want := map[string][]string{
		AddDailyPlan:    {"userId", "date", "title"},
		AddWeeklyPlan:   {"userId", "date", "title"},
		AddMonthlyGoal:  {"userId", "month", "title"},
		GetDailyPlans:   {"userId", "date"},
		GetWeeklyPlans:  {"userId", "startDate", "endDate"},
		GetMonthlyGoals: {"userId", "month"},
		CompletePlan:    {"collection", "planId"},
		DeletePlan:      {"collection", "planId"},
	}

	for _, tool := range Tools() {
		schema, ok := tool.InputSchema.(map[string]any)
		if !ok {
			t.Fatalf("tool %s: schema is %T", tool.Name, tool.InputSchema)
		}
		required, ok := schema["required"].([]string)
		if !ok {
			t.Fatalf("tool %s: missing required list", tool.Name)
		}
		expected := want[tool.Name]
		if len(required) != len(expected) {
			t.Fatalf("tool %s: required = %v, want %v", tool.Name, required, expected)
		}
		for i := range expected {
			if required[i] != expected[i] {
				t.Errorf("tool %s: required = %v, want %v", tool.Name, required, expected)
			}
		}
	}
}

func TestCollectionEnum(t *testing.T) {
	for _, name := range []string{CompletePlan, DeletePlan} {
		tool, ok := Lookup(name)
		if !ok {
			t.Fatalf("tool %s not found", name)
		}
		schema := tool.InputSchema.(map[string]any)
		props := schema["properties"].(map[string]any)
		collection := props["collection"].(map[string]any)
		enum := collection["enum"].([]string)

		want := []string{"dailyPlans", "weeklyPlans", "monthlyPlans"}
		if len(enum) != len(want) {
			t.Fatalf("tool %s: enum = %v, want %v", name, enum, want)
		}
		for i := range want {
			if enum[i] != want[i] {
				t.Errorf("tool %s: enum = %v, want %v", name, enum, want)
			}
		}
	}
}

func TestPriorityEnum(t *testing.T) {
	tool, ok := Lookup(AddMonthlyGoal)
	if !ok {
		t.Fatal("add_monthly_goal not found")
	}
	schema := tool.InputSchema.(map[string]any)
	props := schema["properties"].(map[string]any)
	priority := props["priority"].(map[string]any)

	enum := priority["enum"].([]int)
	if len(enum) != 3 || enum[0] != 1 || enum[1] != 2 || enum[2] != 3 {
		t.Errorf("priority enum = %v, want [1 2 3]", enum)
	}
	if priority["default"] != 2 {
		t.Errorf("priority default = %v, want 2", priority["default"])
	}
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup(CompletePlan)
	if !ok || tool.Name != CompletePlan {
		t.Errorf("Lookup(%s) = %v, %v", CompletePlan, tool.Name, ok)
	}

	if _, ok := Lookup("nonexistent_tool"); ok {
		t.Error("expected miss for nonexistent tool")
	}
}
