// Package plan defines the study-planning record kinds, their collections,
// and the calendar helpers shared by the dispatcher and the storage gateway.
package plan

import (
	"fmt"
	"time"
)

// Collection identifies one of the three record partitions in the document
// store. The set is closed; tools that take a collection name must resolve
// it through ParseCollection before touching the gateway.
type Collection string

const (
	Daily   Collection = "dailyPlans"
	Weekly  Collection = "weeklyPlans"
	Monthly Collection = "monthlyPlans"
)

// Collections returns every valid collection in catalog order.
func Collections() []Collection {
	return []Collection{Daily, Weekly, Monthly}
}

// ParseCollection maps a wire-level collection name onto the closed enum.
func ParseCollection(name string) (Collection, error) {
	switch c := Collection(name); c {
	case Daily, Weekly, Monthly:
		return c, nil
	}
	return "", fmt.Errorf("unknown collection %q", name)
}

// DailyPlan is one day's study item.
//
// StartTime, EndTime and ActualStudyTime are reserved: this server always
// writes them as null/zero and no operation populates them.
type DailyPlan struct {
	ID              string     `firestore:"-"`
	UserID          string     `firestore:"userId"`
	Date            time.Time  `firestore:"date"`
	Title           string     `firestore:"title"`
	Subject         string     `firestore:"subject"`
	Notes           string     `firestore:"notes"`
	IsCompleted     bool       `firestore:"isCompleted"`
	StartTime       *time.Time `firestore:"startTime"`
	EndTime         *time.Time `firestore:"endTime"`
	ActualStudyTime int64      `firestore:"actualStudyTime"`
}

// Fields returns the creation field bag for the gateway. Creation and update
// stamps are not included; the gateway assigns those server-side.
func (p DailyPlan) Fields() map[string]any {
	return map[string]any{
		"userId":          p.UserID,
		"date":            p.Date,
		"title":           p.Title,
		"subject":         p.Subject,
		"notes":           p.Notes,
		"isCompleted":     p.IsCompleted,
		"startTime":       timeOrNil(p.StartTime),
		"endTime":         timeOrNil(p.EndTime),
		"actualStudyTime": p.ActualStudyTime,
	}
}

// DailyPlanFrom rebuilds a DailyPlan from a stored field bag.
func DailyPlanFrom(id string, fields map[string]any) DailyPlan {
	return DailyPlan{
		ID:              id,
		UserID:          asString(fields["userId"]),
		Date:            asTime(fields["date"]),
		Title:           asString(fields["title"]),
		Subject:         asString(fields["subject"]),
		Notes:           asString(fields["notes"]),
		IsCompleted:     asBool(fields["isCompleted"]),
		ActualStudyTime: asInt(fields["actualStudyTime"]),
	}
}

// WeeklyPlan is a study item scheduled within a week.
//
// SubjectID and ParentMonthlyID are reserved for future linkage and are
// always written as null.
type WeeklyPlan struct {
	ID              string    `firestore:"-"`
	UserID          string    `firestore:"userId"`
	Date            time.Time `firestore:"date"`
	Title           string    `firestore:"title"`
	Subject         string    `firestore:"subject"`
	SubjectID       *string   `firestore:"subjectId"`
	PageRanges      []string  `firestore:"pageRanges"`
	Notes           string    `firestore:"notes"`
	IsCompleted     bool      `firestore:"isCompleted"`
	ParentMonthlyID *string   `firestore:"parentMonthlyId"`
}

// Fields returns the creation field bag for the gateway.
func (p WeeklyPlan) Fields() map[string]any {
	return map[string]any{
		"userId":          p.UserID,
		"date":            p.Date,
		"title":           p.Title,
		"subject":         p.Subject,
		"subjectId":       nil,
		"pageRanges":      nonNilRanges(p.PageRanges),
		"notes":           p.Notes,
		"isCompleted":     p.IsCompleted,
		"parentMonthlyId": nil,
	}
}

// WeeklyPlanFrom rebuilds a WeeklyPlan from a stored field bag.
func WeeklyPlanFrom(id string, fields map[string]any) WeeklyPlan {
	return WeeklyPlan{
		ID:          id,
		UserID:      asString(fields["userId"]),
		Date:        asTime(fields["date"]),
		Title:       asString(fields["title"]),
		Subject:     asString(fields["subject"]),
		PageRanges:  asStringSlice(fields["pageRanges"]),
		Notes:       asString(fields["notes"]),
		IsCompleted: asBool(fields["isCompleted"]),
	}
}

// MonthlyGoal is a month-scoped target keyed by its YYYY-MM month string.
//
// SubjectID, PageRanges, StartDate, Subtasks, Tag and RelatedWeeklyIDs are
// reserved and always written as null/empty.
type MonthlyGoal struct {
	ID               string     `firestore:"-"`
	UserID           string     `firestore:"userId"`
	Month            string     `firestore:"month"`
	Title            string     `firestore:"title"`
	Subject          string     `firestore:"subject"`
	SubjectID        *string    `firestore:"subjectId"`
	PageRanges       []string   `firestore:"pageRanges"`
	StartDate        *time.Time `firestore:"startDate"`
	EndDate          *time.Time `firestore:"endDate"`
	Subtasks         []any      `firestore:"subtasks"`
	Tag              string     `firestore:"tag"`
	Priority         int64      `firestore:"priority"`
	IsCompleted      bool       `firestore:"isCompleted"`
	RelatedWeeklyIDs []string   `firestore:"relatedWeeklyIds"`
	Notes            string     `firestore:"notes"`
}

// Fields returns the creation field bag for the gateway.
func (g MonthlyGoal) Fields() map[string]any {
	return map[string]any{
		"userId":           g.UserID,
		"month":            g.Month,
		"title":            g.Title,
		"subject":          g.Subject,
		"subjectId":        nil,
		"pageRanges":       []string{},
		"startDate":        nil,
		"endDate":          timeOrNil(g.EndDate),
		"subtasks":         []any{},
		"tag":              "",
		"priority":         g.Priority,
		"isCompleted":      g.IsCompleted,
		"relatedWeeklyIds": []string{},
		"notes":            g.Notes,
	}
}

// MonthlyGoalFrom rebuilds a MonthlyGoal from a stored field bag.
func MonthlyGoalFrom(id string, fields map[string]any) MonthlyGoal {
	return MonthlyGoal{
		ID:          id,
		UserID:      asString(fields["userId"]),
		Month:       asString(fields["month"]),
		Title:       asString(fields["title"]),
		Subject:     asString(fields["subject"]),
		Priority:    asInt(fields["priority"]),
		IsCompleted: asBool(fields["isCompleted"]),
		Notes:       asString(fields["notes"]),
	}
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nonNilRanges(ranges []string) []string {
	if ranges == nil {
		return []string{}
	}
	return ranges
}
