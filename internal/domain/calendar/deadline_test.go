package calendar_test

import (
	"testing"

	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	today := mustParse(t, "2024-12-18")

	require.Equal(t, calendar.DeadlineStatus{DaysLeft: 2}, calendar.Status(mustParse(t, "2024-12-20"), today))
	require.Equal(t, calendar.DeadlineStatus{DaysLeft: 0}, calendar.Status(today, today))
	require.Equal(t, calendar.DeadlineStatus{Past: true, DaysLeft: -3}, calendar.Status(mustParse(t, "2024-12-15"), today))
}

func TestUpcoming(t *testing.T) {
	records := sampleRecords(t)
	today := mustParse(t, "2024-12-20")

	all := calendar.Upcoming(records, today, 0)
	require.Len(t, all, 4)
	require.Equal(t, "🎓 Kuru Footsteps to Your Future Scholarship", all[0].Record.Name)
	require.Equal(t, 0, all[0].DaysLeft)
	require.Equal(t, "2024-12-31", all[1].Record.DueDate.String())
	require.Equal(t, "2025-01-10", all[2].Record.DueDate.String())
	require.Equal(t, "2025-02-14", all[3].Record.DueDate.String())

	soon := calendar.Upcoming(records, today, 14)
	require.Len(t, soon, 2)
	require.Equal(t, 11, soon[1].DaysLeft)
}
