package http

import "smartstudy/internal/stats"

// --- Response DTOs ---
//
// Dates are rendered as YYYY-MM-DD in the owner's timezone; floats are
// served raw and rounded client-side.

type summaryResp struct {
	TodayCompleted int     `json:"today_completed"`
	WeekCompleted  int     `json:"week_completed"`
	TotalCompleted int     `json:"total_completed"`
	ActiveTasks    int     `json:"active_tasks"`
	Streak         int     `json:"streak"`
	BestStreak     int     `json:"best_streak"`
	Consistency7d  float64 `json:"consistency_7d"`
	Consistency30d float64 `json:"consistency_30d"`
	AvgPriority    float64 `json:"avg_priority"`
	CompletionRate float64 `json:"completion_rate"`
}

func newSummaryResp(out stats.SummaryOutput) summaryResp {
	return summaryResp{
		TodayCompleted: out.TodayCompleted,
		WeekCompleted:  out.WeekCompleted,
		TotalCompleted: out.TotalCompleted,
		ActiveTasks:    out.ActiveTasks,
		Streak:         out.Streak,
		BestStreak:     out.BestStreak,
		Consistency7d:  out.Consistency7d,
		Consistency30d: out.Consistency30d,
		AvgPriority:    out.AvgPriority,
		CompletionRate: out.CompletionRate,
	}
}

type dayCountResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type weeklyResp struct {
	Days  []dayCountResp `json:"days"`
	Total int            `json:"total"`
}

func newWeeklyResp(out stats.WeeklyOutput) weeklyResp {
	resp := weeklyResp{
		Days:  make([]dayCountResp, len(out.Days)),
		Total: out.Total,
	}
	for i, d := range out.Days {
		resp.Days[i] = dayCountResp{Date: d.Date.String(), Count: d.Count}
	}
	return resp
}

type categoryCountResp struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	Completed int    `json:"completed"`
}

type categoriesResp struct {
	Categories []categoryCountResp `json:"categories"`
}

func newCategoriesResp(out stats.CategoriesOutput) categoriesResp {
	resp := categoriesResp{Categories: make([]categoryCountResp, len(out.Categories))}
	for i, cat := range out.Categories {
		resp.Categories[i] = categoryCountResp{
			Category:  cat.Category,
			Count:     cat.Count,
			Completed: cat.Completed,
		}
	}
	return resp
}

type heatmapDayResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type heatmapResp struct {
	Days               []heatmapDayResp `json:"days"`
	TotalContributions int              `json:"total_contributions"`
	CurrentStreak      int              `json:"current_streak"`
	LongestStreak      int              `json:"longest_streak"`
}

func newHeatmapResp(out stats.HeatmapOutput) heatmapResp {
	resp := heatmapResp{
		Days:               make([]heatmapDayResp, len(out.Days)),
		TotalContributions: out.TotalContributions,
		CurrentStreak:      out.CurrentStreak,
		LongestStreak:      out.LongestStreak,
	}
	for i, d := range out.Days {
		resp.Days[i] = heatmapDayResp{Date: d.Date.String(), Count: d.Count, Level: d.Level}
	}
	return resp
}
