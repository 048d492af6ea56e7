package report

import "context"

// ReportService derives display-only aggregates from the attendance store
// and the employee directory. It never writes state.
type ReportService interface {
	// TodayBoard classifies every employee's current day for the admin
	// dashboard.
	TodayBoard(ctx context.Context) (TodayBoardResponse, error)

	// MonthlyStats tallies per-employee present/late/absent/leave counts for
	// the month containing the given YYYY-MM anchor; empty means the current
	// month.
	MonthlyStats(ctx context.Context, month string) (MonthlyStatsResponse, error)
}
