package dispatcher

import (
	"time"

	"github.com/jonwraymond/studyplanner/plan"
)

// One tagged request type per tool. Each decode function converts the
// untyped argument bag into its typed request, applying required/default
// rules and format checks; no business logic runs until decoding succeeds.

type addDailyPlanRequest struct {
	UserID  string
	Date    time.Time
	RawDate string
	Title   string
	Subject string
	Notes   string
}

func decodeAddDailyPlan(args map[string]any) (req addDailyPlanRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.RawDate, err = requireString(args, "date"); err != nil {
		return req, err
	}
	if req.Date, err = plan.ParseDate(req.RawDate); err != nil {
		return req, validationf("%v", err)
	}
	if req.Title, err = requireString(args, "title"); err != nil {
		return req, err
	}
	if req.Subject, err = optionalString(args, "subject"); err != nil {
		return req, err
	}
	if req.Notes, err = optionalString(args, "notes"); err != nil {
		return req, err
	}
	return req, nil
}

type addWeeklyPlanRequest struct {
	UserID     string
	Date       time.Time
	RawDate    string
	Title      string
	Subject    string
	PageRanges []string
	Notes      string
}

func decodeAddWeeklyPlan(args map[string]any) (req addWeeklyPlanRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.RawDate, err = requireString(args, "date"); err != nil {
		return req, err
	}
	if req.Date, err = plan.ParseDate(req.RawDate); err != nil {
		return req, validationf("%v", err)
	}
	if req.Title, err = requireString(args, "title"); err != nil {
		return req, err
	}
	if req.Subject, err = optionalString(args, "subject"); err != nil {
		return req, err
	}
	if req.PageRanges, err = optionalStringSlice(args, "pageRanges"); err != nil {
		return req, err
	}
	if req.Notes, err = optionalString(args, "notes"); err != nil {
		return req, err
	}
	return req, nil
}

type addMonthlyGoalRequest struct {
	UserID     string
	Month      string
	Title      string
	Subject    string
	EndDate    *time.Time
	RawEndDate string
	Priority   int64
	Notes      string
}

func decodeAddMonthlyGoal(args map[string]any) (req addMonthlyGoalRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.Month, err = requireString(args, "month"); err != nil {
		return req, err
	}
	if err = plan.ParseMonth(req.Month); err != nil {
		return req, validationf("%v", err)
	}
	if req.Title, err = requireString(args, "title"); err != nil {
		return req, err
	}
	if req.Subject, err = optionalString(args, "subject"); err != nil {
		return req, err
	}
	if req.RawEndDate, err = optionalString(args, "endDate"); err != nil {
		return req, err
	}
	if req.RawEndDate != "" {
		end, err := plan.ParseDate(req.RawEndDate)
		if err != nil {
			return req, validationf("%v", err)
		}
		req.EndDate = &end
	}
	if req.Priority, err = optionalInt(args, "priority", 2); err != nil {
		return req, err
	}
	if req.Priority < 1 || req.Priority > 3 {
		return req, validationf("field %q must be 1, 2 or 3", "priority")
	}
	if req.Notes, err = optionalString(args, "notes"); err != nil {
		return req, err
	}
	return req, nil
}

type getDailyPlansRequest struct {
	UserID  string
	Date    time.Time
	RawDate string
}

func decodeGetDailyPlans(args map[string]any) (req getDailyPlansRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.RawDate, err = requireString(args, "date"); err != nil {
		return req, err
	}
	if req.Date, err = plan.ParseDate(req.RawDate); err != nil {
		return req, validationf("%v", err)
	}
	return req, nil
}

type getWeeklyPlansRequest struct {
	UserID       string
	Start        time.Time
	End          time.Time
	RawStartDate string
	RawEndDate   string
}

func decodeGetWeeklyPlans(args map[string]any) (req getWeeklyPlansRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.RawStartDate, err = requireString(args, "startDate"); err != nil {
		return req, err
	}
	if req.Start, err = plan.ParseDate(req.RawStartDate); err != nil {
		return req, validationf("%v", err)
	}
	if req.RawEndDate, err = requireString(args, "endDate"); err != nil {
		return req, err
	}
	if req.End, err = plan.ParseDate(req.RawEndDate); err != nil {
		return req, validationf("%v", err)
	}
	return req, nil
}

type getMonthlyGoalsRequest struct {
	UserID string
	Month  string
}

func decodeGetMonthlyGoals(args map[string]any) (req getMonthlyGoalsRequest, err error) {
	if req.UserID, err = requireString(args, "userId"); err != nil {
		return req, err
	}
	if req.Month, err = requireString(args, "month"); err != nil {
		return req, err
	}
	return req, nil
}

// planRefRequest addresses one record by collection and ID; complete_plan
// and delete_plan share it.
type planRefRequest struct {
	Collection plan.Collection
	PlanID     string
}

func decodePlanRef(args map[string]any) (req planRefRequest, err error) {
	name, err := requireString(args, "collection")
	if err != nil {
		return req, err
	}
	if req.Collection, err = plan.ParseCollection(name); err != nil {
		return req, validationf("%v", err)
	}
	if req.PlanID, err = requireString(args, "planId"); err != nil {
		return req, err
	}
	return req, nil
}
