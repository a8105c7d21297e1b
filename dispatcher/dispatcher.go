// Package dispatcher maps tool invocations onto single storage-gateway
// operations. Each invocation validates its argument bag against the
// declared schema, performs exactly one gateway call, and renders a text
// reply; every failure is folded into the error envelope.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/jonwraymond/studyplanner/catalog"
	"github.com/jonwraymond/studyplanner/plan"
	"github.com/jonwraymond/studyplanner/store"
)

// Dispatcher routes tool calls to the storage gateway.
type Dispatcher struct {
	gateway store.Gateway
}

// New wires a dispatcher to its storage gateway.
func New(gateway store.Gateway) *Dispatcher {
	return &Dispatcher{gateway: gateway}
}

// Result is the invocation envelope: exactly one text payload, plus an
// error flag when the invocation failed.
type Result struct {
	Text    string
	IsError bool
}

// Invoke runs the named tool against the argument bag. It never panics and
// never returns a raw error: validation failures, unknown tool names, and
// storage failures all come back as an error Result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) Result {
	text, err := d.invoke(ctx, name, args)
	if err != nil {
		return Result{Text: "❌ 오류 발생: " + err.Error(), IsError: true}
	}
	return Result{Text: text}
}

func (d *Dispatcher) invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case catalog.AddDailyPlan:
		return d.addDailyPlan(ctx, args)
	case catalog.AddWeeklyPlan:
		return d.addWeeklyPlan(ctx, args)
	case catalog.AddMonthlyGoal:
		return d.addMonthlyGoal(ctx, args)
	case catalog.GetDailyPlans:
		return d.getDailyPlans(ctx, args)
	case catalog.GetWeeklyPlans:
		return d.getWeeklyPlans(ctx, args)
	case catalog.GetMonthlyGoals:
		return d.getMonthlyGoals(ctx, args)
	case catalog.CompletePlan:
		return d.completePlan(ctx, args)
	case catalog.DeletePlan:
		return d.deletePlan(ctx, args)
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

func (d *Dispatcher) addDailyPlan(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeAddDailyPlan(args)
	if err != nil {
		return "", err
	}

	record := plan.DailyPlan{
		UserID:  req.UserID,
		Date:    req.Date,
		Title:   req.Title,
		Subject: req.Subject,
		Notes:   req.Notes,
	}
	id, err := d.gateway.AddRecord(ctx, plan.Daily, record.Fields())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ 일일 계획이 추가되었습니다!\nID: %s\n제목: %s\n날짜: %s", id, req.Title, req.RawDate), nil
}

func (d *Dispatcher) addWeeklyPlan(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeAddWeeklyPlan(args)
	if err != nil {
		return "", err
	}

	record := plan.WeeklyPlan{
		UserID:     req.UserID,
		Date:       req.Date,
		Title:      req.Title,
		Subject:    req.Subject,
		PageRanges: req.PageRanges,
		Notes:      req.Notes,
	}
	id, err := d.gateway.AddRecord(ctx, plan.Weekly, record.Fields())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ 주간 계획이 추가되었습니다!\nID: %s\n제목: %s\n날짜: %s", id, req.Title, req.RawDate), nil
}

func (d *Dispatcher) addMonthlyGoal(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeAddMonthlyGoal(args)
	if err != nil {
		return "", err
	}

	record := plan.MonthlyGoal{
		UserID:   req.UserID,
		Month:    req.Month,
		Title:    req.Title,
		Subject:  req.Subject,
		EndDate:  req.EndDate,
		Priority: req.Priority,
		Notes:    req.Notes,
	}
	id, err := d.gateway.AddRecord(ctx, plan.Monthly, record.Fields())
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("✅ 월간 목표가 추가되었습니다!\nID: %s\n제목: %s\n월: %s", id, req.Title, req.Month)
	if req.RawEndDate != "" {
		text += fmt.Sprintf("\n마감일: %s", req.RawEndDate)
	}
	return text, nil
}

func (d *Dispatcher) getDailyPlans(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeGetDailyPlans(args)
	if err != nil {
		return "", err
	}

	start, end := plan.DayBounds(req.Date)
	records, err := d.gateway.QueryRecords(ctx, plan.Daily, []store.Filter{
		store.Eq("userId", req.UserID),
		store.Gte("date", start),
		store.Lte("date", end),
	})
	if err != nil {
		return "", err
	}

	plans := make([]plan.DailyPlan, 0, len(records))
	for _, r := range records {
		plans = append(plans, plan.DailyPlanFrom(r.ID, r.Fields))
	}
	return renderDailyPlans(req.RawDate, plans), nil
}

func (d *Dispatcher) getWeeklyPlans(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeGetWeeklyPlans(args)
	if err != nil {
		return "", err
	}

	records, err := d.gateway.QueryRecords(ctx, plan.Weekly, []store.Filter{
		store.Eq("userId", req.UserID),
		store.Gte("date", req.Start),
		store.Lte("date", req.End),
	})
	if err != nil {
		return "", err
	}

	plans := make([]plan.WeeklyPlan, 0, len(records))
	for _, r := range records {
		plans = append(plans, plan.WeeklyPlanFrom(r.ID, r.Fields))
	}
	return renderWeeklyPlans(req.RawStartDate, req.RawEndDate, plans), nil
}

func (d *Dispatcher) getMonthlyGoals(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodeGetMonthlyGoals(args)
	if err != nil {
		return "", err
	}

	records, err := d.gateway.QueryRecords(ctx, plan.Monthly, []store.Filter{
		store.Eq("userId", req.UserID),
		store.Eq("month", req.Month),
	})
	if err != nil {
		return "", err
	}

	goals := make([]plan.MonthlyGoal, 0, len(records))
	for _, r := range records {
		goals = append(goals, plan.MonthlyGoalFrom(r.ID, r.Fields))
	}
	return renderMonthlyGoals(req.Month, goals), nil
}

func (d *Dispatcher) completePlan(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodePlanRef(args)
	if err != nil {
		return "", err
	}

	// Completion only ever moves false to true; the gateway restamps
	// updatedAt on every update.
	if err := d.gateway.UpdateRecord(ctx, req.Collection, req.PlanID, map[string]any{
		"isCompleted": true,
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ 계획이 완료되었습니다! (ID: %s)", req.PlanID), nil
}

func (d *Dispatcher) deletePlan(ctx context.Context, args map[string]any) (string, error) {
	req, err := decodePlanRef(args)
	if err != nil {
		return "", err
	}

	if err := d.gateway.DeleteRecord(ctx, req.Collection, req.PlanID); err != nil {
		return "", err
	}

	return fmt.Sprintf("🗑️ 계획이 삭제되었습니다! (ID: %s)", req.PlanID), nil
}
