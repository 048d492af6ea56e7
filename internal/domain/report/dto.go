package report

// TodayBoardEntry is one row of the admin daily board: the employee plus the
// display classification of their current day.
type TodayBoardEntry struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Department   string  `json:"department,omitempty"`
	ShiftName    string  `json:"shift,omitempty"`
	EntryTime    string  `json:"entry_time,omitempty"`
	ExitTime     string  `json:"exit_time,omitempty"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Dressing     string  `json:"dressing"`
}

type TodayBoardResponse struct {
	Date    string            `json:"date"`
	Present int               `json:"present"`
	Absent  int               `json:"absent"`
	OnLeave int               `json:"on_leave"`
	Pending int               `json:"pending"`
	Entries []TodayBoardEntry `json:"entries"`
}

// MonthlyEmployeeStats aggregates one employee's record counts for a
// calendar month.
type MonthlyEmployeeStats struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Present      int    `json:"present"`
	Late         int    `json:"late"`
	Absent       int    `json:"absent"`
	Leave        int    `json:"leave"`
	AnnualLeaves int    `json:"annual_leaves"`
	CasualLeaves int    `json:"casual_leaves"`
}

type MonthlyStatsResponse struct {
	Month string                 `json:"month"` // YYYY-MM
	Stats []MonthlyEmployeeStats `json:"stats"`
}
