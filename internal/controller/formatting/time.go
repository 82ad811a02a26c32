package formatting

import "time"

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatPeriod форматирует расчётный период счёта
func FormatPeriod(start, end time.Time) string {
	return start.Format("02.01.2006") + " - " + end.Format("02.01.2006")
}
