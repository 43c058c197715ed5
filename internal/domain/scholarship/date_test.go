package scholarship_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "2024-12-20", want: "2024-12-20"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "surrounding space", input: " 2025-01-10 ", want: "2025-01-10"},
		{name: "month and day out of range", input: "2024-13-40", wantErr: true},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "us layout", input: "12/20/2024", wantErr: true},
		{name: "timestamp", input: "2024-12-20T00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scholarship.ParseDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, scholarship.ErrInvalidDueDate)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewDate(t *testing.T) {
	d, err := scholarship.NewDate(2024, time.October, 15)
	require.NoError(t, err)
	require.Equal(t, "October 15, 2024", d.Long())

	_, err = scholarship.NewDate(2024, time.April, 31)
	require.ErrorIs(t, err, scholarship.ErrInvalidDueDate)
}

func TestDate_Arithmetic(t *testing.T) {
	d := scholarship.MustDate(2024, time.December, 31)
	require.Equal(t, "2025-01-01", d.AddDays(1).String())
	require.Equal(t, 10, d.DaysUntil(scholarship.MustDate(2025, time.January, 10)))
	require.Equal(t, -1, d.DaysUntil(scholarship.MustDate(2024, time.December, 30)))
	require.True(t, d.Before(d.AddDays(1)))
	require.True(t, d.After(d.AddDays(-1)))
	require.Equal(t, time.Tuesday, d.Weekday())
}

func TestDate_DaysUntilFarApart(t *testing.T) {
	first := scholarship.MustDate(1, time.January, 1)
	last := scholarship.MustDate(9999, time.December, 31)
	require.Equal(t, 3652058, first.DaysUntil(last))
	require.Equal(t, -3652058, last.DaysUntil(first))

	today := scholarship.MustDate(2024, time.December, 1)
	require.Equal(t, -118673, today.DaysUntil(scholarship.MustDate(1700, time.January, 1)))
}

func TestDate_JSON(t *testing.T) {
	rec := scholarship.Record{Name: "Kuru", DueDate: scholarship.MustDate(2024, time.December, 20)}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Kuru","due_date":"2024-12-20","summary":""}`, string(data))

	var decoded scholarship.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rec, decoded)

	err = json.Unmarshal([]byte(`{"name":"x","due_date":"2024-13-40"}`), &decoded)
	require.ErrorIs(t, err, scholarship.ErrInvalidDueDate)
}

func TestDate_YAML(t *testing.T) {
	var rec scholarship.Record
	require.NoError(t, yaml.Unmarshal([]byte("name: Kuru\ndue_date: 2024-12-20\n"), &rec))
	require.Equal(t, "2024-12-20", rec.DueDate.String())

	err := yaml.Unmarshal([]byte("name: Kuru\ndue_date: 2024-13-40\n"), &rec)
	require.ErrorIs(t, err, scholarship.ErrInvalidDueDate)
}
