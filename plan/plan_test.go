package plan

import (
	"testing"
	"time"
)

func TestParseCollection(t *testing.T) {
	for _, name := range []string{"dailyPlans", "weeklyPlans", "monthlyPlans"} {
		c, err := ParseCollection(name)
		if err != nil {
			t.Fatalf("ParseCollection(%q) failed: %v", name, err)
		}
		if string(c) != name {
			t.Errorf("expected %q, got %q", name, c)
		}
	}

	if _, err := ParseCollection("invalidCollection"); err == nil {
		t.Error("expected error for invalid collection")
	}
	if _, err := ParseCollection(""); err == nil {
		t.Error("expected error for empty collection")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("unexpected date %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
		t.Errorf("expected local midnight, got %v", d)
	}
	if d.Location() != time.Local {
		t.Errorf("expected local zone, got %v", d.Location())
	}

	if _, err := ParseDate("2024-03-15T10:30:00Z"); err != nil {
		t.Errorf("expected RFC 3339 to parse: %v", err)
	}

	for _, bad := range []string{"", "tomorrow", "2024-13-01", "15-03-2024"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseMonth(t *testing.T) {
	if err := ParseMonth("2024-03"); err != nil {
		t.Errorf("ParseMonth failed: %v", err)
	}
	for _, bad := range []string{"", "2024", "2024-13", "03-2024", "2024-03-15"} {
		if err := ParseMonth(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDayBounds(t *testing.T) {
	noon := time.Date(2024, time.March, 15, 12, 34, 56, 789, time.Local)
	start, end := DayBounds(noon)

	wantStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}

	wantEnd := time.Date(2024, time.March, 15, 23, 59, 59, 999e6, time.Local)
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// The two bounds must be independent instants: recomputing one leaves
	// the other untouched.
	start2, _ := DayBounds(end)
	if !start2.Equal(wantStart) {
		t.Errorf("start derived from end = %v, want %v", start2, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end changed to %v after recompute", end)
	}
}

func TestDailyPlanFields(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	fields := DailyPlan{UserID: "u1", Date: date, Title: "Read Ch.3"}.Fields()

	if fields["userId"] != "u1" || fields["title"] != "Read Ch.3" {
		t.Errorf("unexpected fields %v", fields)
	}
	if fields["subject"] != "" || fields["notes"] != "" {
		t.Errorf("expected empty defaults, got %v", fields)
	}
	if fields["isCompleted"] != false {
		t.Error("expected isCompleted=false")
	}
	if fields["startTime"] != nil || fields["endTime"] != nil {
		t.Error("reserved times must be null")
	}
	if fields["actualStudyTime"] != int64(0) {
		t.Errorf("expected actualStudyTime=0, got %v", fields["actualStudyTime"])
	}
	if _, ok := fields["createdAt"]; ok {
		t.Error("createdAt must be gateway-assigned, not part of the field bag")
	}
}

func TestWeeklyPlanFields(t *testing.T) {
	fields := WeeklyPlan{UserID: "u1", Title: "Workbook"}.Fields()

	if fields["subjectId"] != nil || fields["parentMonthlyId"] != nil {
		t.Error("reserved references must be null")
	}
	ranges, ok := fields["pageRanges"].([]string)
	if !ok || len(ranges) != 0 {
		t.Errorf("expected empty pageRanges, got %v", fields["pageRanges"])
	}
}

func TestMonthlyGoalFields(t *testing.T) {
	fields := MonthlyGoal{UserID: "u1", Month: "2024-03", Title: "Finish book", Priority: 2}.Fields()

	if fields["priority"] != int64(2) {
		t.Errorf("expected priority 2, got %v", fields["priority"])
	}
	if fields["startDate"] != nil || fields["endDate"] != nil {
		t.Error("expected null dates")
	}
	if fields["tag"] != "" {
		t.Error("reserved tag must be empty")
	}
	for _, key := range []string{"subtasks", "relatedWeeklyIds", "pageRanges"} {
		if fields[key] == nil {
			t.Errorf("reserved sequence %q must be empty, not null", key)
		}
	}
}

func TestMonthlyGoalFrom(t *testing.T) {
	goal := MonthlyGoalFrom("g1", map[string]any{
		"userId":      "u1",
		"month":       "2024-03",
		"title":       "Finish book",
		"subject":     "math",
		"priority":    int64(1),
		"isCompleted": true,
	})

	if goal.ID != "g1" || goal.Month != "2024-03" || goal.Priority != 1 || !goal.IsCompleted {
		t.Errorf("unexpected goal %+v", goal)
	}
}

func TestWeeklyPlanFromLooseTypes(t *testing.T) {
	p := WeeklyPlanFrom("w1", map[string]any{
		"title":      "Workbook",
		"pageRanges": []any{"45-67", "100-120"},
	})
	if len(p.PageRanges) != 2 || p.PageRanges[0] != "45-67" {
		t.Errorf("unexpected pageRanges %v", p.PageRanges)
	}
}
