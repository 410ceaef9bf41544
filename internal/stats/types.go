package stats

import "smartstudy/pkg/daybucket"

// SummaryOutput is the dashboard headline block.
type SummaryOutput struct {
	TodayCompleted int
	WeekCompleted  int
	TotalCompleted int
	ActiveTasks    int
	Streak         int
	BestStreak     int
	Consistency7d  float64
	Consistency30d float64
	AvgPriority    float64
	CompletionRate float64
}

// DayCountOutput is one bar of the weekly chart.
type DayCountOutput struct {
	Date  daybucket.Day
	Count int
}

// WeeklyOutput is the last-7-days completion series.
type WeeklyOutput struct {
	Days  []DayCountOutput
	Total int
}

// CategoryCountOutput is one slice of the category donut.
// Categories with zero tasks are omitted entirely.
type CategoryCountOutput struct {
	Category  string
	Count     int
	Completed int
}

// CategoriesOutput is the per-category task distribution.
type CategoriesOutput struct {
	Categories []CategoryCountOutput
}

// HeatmapDayOutput is one cell of the activity heatmap.
type HeatmapDayOutput struct {
	Date  daybucket.Day
	Count int
	Level int
}

// HeatmapOutput is the 365-day activity grid.
type HeatmapOutput struct {
	Days               []HeatmapDayOutput
	TotalContributions int
	CurrentStreak      int
	LongestStreak      int
}
