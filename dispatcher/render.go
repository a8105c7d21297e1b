package dispatcher

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/studyplanner/plan"
)

// Reply rendering. Numbered items start at 1, every item carries a binary
// completion glyph, and absent optional display fields render the literal
// "없음" placeholder instead of being omitted.

func renderDailyPlans(date string, plans []plan.DailyPlan) string {
	if len(plans) == 0 {
		return fmt.Sprintf("%s에 등록된 일일 계획이 없습니다.", date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s 일일 계획:\n\n", date)
	for i, p := range plans {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s %s\n   과목: %s\n   ID: %s",
			i+1, checkbox(p.IsCompleted), p.Title, orNone(p.Subject), p.ID)
	}
	return b.String()
}

func renderWeeklyPlans(startDate, endDate string, plans []plan.WeeklyPlan) string {
	if len(plans) == 0 {
		return "해당 기간에 등록된 주간 계획이 없습니다."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📆 %s ~ %s 주간 계획:\n\n", startDate, endDate)
	for i, p := range plans {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s %s\n   과목: %s\n   페이지: %s\n   ID: %s",
			i+1, checkbox(p.IsCompleted), p.Title, orNone(p.Subject), pageList(p.PageRanges), p.ID)
	}
	return b.String()
}

func renderMonthlyGoals(month string, goals []plan.MonthlyGoal) string {
	if len(goals) == 0 {
		return fmt.Sprintf("%s에 등록된 월간 목표가 없습니다.", month)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s 월간 목표:\n\n", month)
	for i, g := range goals {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s %s %s\n   과목: %s\n   ID: %s",
			i+1, checkbox(g.IsCompleted), priorityGlyph(g.Priority), g.Title, orNone(g.Subject), g.ID)
	}
	return b.String()
}

func checkbox(done bool) string {
	if done {
		return "✅"
	}
	return "⬜"
}

func orNone(s string) string {
	if s == "" {
		return "없음"
	}
	return s
}

func pageList(ranges []string) string {
	if len(ranges) == 0 {
		return "없음"
	}
	return strings.Join(ranges, ", ")
}

func priorityGlyph(priority int64) string {
	switch priority {
	case 1:
		return "🔴"
	case 2:
		return "🟡"
	}
	return "🟢"
}
