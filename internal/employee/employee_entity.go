package employee

const (
	OptionsCacheKey = "employees:options"
)

// TaskCounter adalah agregat employee_tasks per employee untuk list.
type TaskCounter struct {
	EmployeeID string `gorm:"column:employee_id"`
	Total      int64  `gorm:"column:total"`
	Completed  int64  `gorm:"column:completed"`
	Pending    int64  `gorm:"column:pending"`
	InProgress int64  `gorm:"column:in_progress"`
	Overdue    int64  `gorm:"column:overdue"`
}
