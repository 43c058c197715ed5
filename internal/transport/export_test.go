package transport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/stretchr/testify/require"
)

func exportRecords() []scholarship.Record {
	return []scholarship.Record{
		{Name: "Kuru Scholarship", DueDate: scholarship.MustDate(2024, time.December, 20), Summary: "Awards $1,000; apply early."},
		{Name: "Kuru Scholarship", DueDate: scholarship.MustDate(2024, time.December, 20), Summary: "Second listing."},
		{Name: "Alert1 Seniors Scholarship", DueDate: scholarship.MustDate(2025, time.January, 10)},
	}
}

func TestParseReminder(t *testing.T) {
	tests := []struct {
		in      string
		want    Reminder
		trigger string
		wantErr bool
	}{
		{in: "2@18:00", want: Reminder{DaysBefore: 2, Hour: 18}, trigger: "-P1DT6H0M"},
		{in: "1@09:30", want: Reminder{DaysBefore: 1, Hour: 9, Minute: 30}, trigger: "-P0DT14H30M"},
		{in: "0@08:00", want: Reminder{Hour: 8}, trigger: "P0DT8H0M"},
		{in: "2", wantErr: true},
		{in: "x@18:00", wantErr: true},
		{in: "-1@18:00", wantErr: true},
		{in: "2@25:00", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseReminder(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidExport)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.trigger, got.Trigger())
		})
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, exportRecords(), ICSOptions{
		Reminders: []Reminder{{DaysBefore: 2, Hour: 18}},
		Now:       time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	require.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	require.Contains(t, out, "X-WR-CALNAME:Scholarship Deadlines\r\n")
	require.Contains(t, out, "DTSTAMP:20241201T120000Z\r\n")
	require.Contains(t, out, "DTSTART;VALUE=DATE:20241220\r\n")
	require.Contains(t, out, "DTEND;VALUE=DATE:20241221\r\n")
	require.Contains(t, out, `DESCRIPTION:Awards $1\,000\; apply early.`)
	require.Contains(t, out, "UID:2024-12-20-kuru-scholarship@scholarships.scu.edu\r\n")
	require.Contains(t, out, "UID:2024-12-20-kuru-scholarship-2@scholarships.scu.edu\r\n")
	require.Equal(t, 3, strings.Count(out, "BEGIN:VALARM"))
}

func TestEventUIDs_Unique(t *testing.T) {
	due := scholarship.MustDate(2024, time.December, 20)
	records := []scholarship.Record{
		{Name: "X", DueDate: due},
		{Name: "X", DueDate: due},
		{Name: "X 2", DueDate: due},
		{Name: "X-2", DueDate: due},
	}

	uids := eventUIDs(records)
	require.Equal(t, []string{
		"2024-12-20-x@scholarships.scu.edu",
		"2024-12-20-x-2@scholarships.scu.edu",
		"2024-12-20-x-2-2@scholarships.scu.edu",
		"2024-12-20-x-2-3@scholarships.scu.edu",
	}, uids)

	seen := map[string]bool{}
	for _, uid := range uids {
		require.False(t, seen[uid], "duplicate UID %s", uid)
		seen[uid] = true
	}
}

func TestWriteICS_FoldsLongLines(t *testing.T) {
	records := []scholarship.Record{{
		Name:    "🎓 " + strings.Repeat("Long Name ", 12),
		DueDate: scholarship.MustDate(2024, time.December, 20),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, records, ICSOptions{}))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		require.LessOrEqual(t, len(line), 75, line)
	}
	require.Contains(t, buf.String(), "\r\n ")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, []string{"due_date", "name", "summary"}, rows[0])
	require.Equal(t, []string{"2024-12-20", "Kuru Scholarship", "Awards $1,000; apply early."}, rows[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, exportRecords()))

	var doc struct {
		Count        int                  `json:"count"`
		Scholarships []scholarship.Record `json:"scholarships"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, 3, doc.Count)
	require.Equal(t, scholarship.MustDate(2025, time.January, 10), doc.Scholarships[2].DueDate)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "xml", exportRecords(), ICSOptions{})
	require.ErrorIs(t, err, ErrInvalidExport)
	require.Equal(t, "application/json; charset=utf-8", ContentType(FormatJSON))
}
