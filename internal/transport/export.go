package transport

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// Export formats.
const (
	FormatICS  = "ics"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ICSProductID identifies the generator in exported calendars.
const ICSProductID = "-//SCU Scholarship Finder//Deadlines//EN"

// ErrInvalidExport is returned for an unknown format or malformed reminder.
var ErrInvalidExport = errors.New("invalid export request")

// Reminder is an alarm at a wall-clock time some days before the due date.
type Reminder struct {
	DaysBefore int
	Hour       int
	Minute     int
}

// ParseReminder parses "DAYS@HH:MM", e.g. "2@18:00".
func ParseReminder(s string) (Reminder, error) {
	daysPart, clock, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Reminder{}, fmt.Errorf("%w: reminder %q, want DAYS@HH:MM", ErrInvalidExport, s)
	}
	days, err := strconv.Atoi(daysPart)
	if err != nil || days < 0 {
		return Reminder{}, fmt.Errorf("%w: reminder days %q", ErrInvalidExport, daysPart)
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return Reminder{}, fmt.Errorf("%w: reminder time %q", ErrInvalidExport, clock)
	}
	return Reminder{DaysBefore: days, Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Trigger returns the alarm offset from the start of the all-day event as an
// ISO 8601 duration.
func (r Reminder) Trigger() string {
	total := -r.DaysBefore*24*60 + r.Hour*60 + r.Minute
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	minutes := total % 60
	return fmt.Sprintf("%sP%dDT%dH%dM", sign, days, hours, minutes)
}

// ICSOptions controls calendar export.
type ICSOptions struct {
	CalendarName string
	Reminders    []Reminder
	// Now stamps DTSTAMP; zero uses the current time.
	Now time.Time
}

// WriteICS writes records as all-day iCalendar events.
func WriteICS(w io.Writer, records []scholarship.Record, opts ICSOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	name := opts.CalendarName
	if name == "" {
		name = "Scholarship Deadlines"
	}

	iw := &icsWriter{w: w}
	iw.line("BEGIN:VCALENDAR")
	iw.line("VERSION:2.0")
	iw.line("PRODID:" + ICSProductID)
	iw.line("X-WR-CALNAME:" + escapeICS(name))
	iw.line("CALSCALE:GREGORIAN")

	stamp := now.UTC().Format("20060102T150405Z")
	for i, uid := range eventUIDs(records) {
		rec := records[i]
		iw.line("BEGIN:VEVENT")
		iw.line("UID:" + uid)
		iw.line("DTSTAMP:" + stamp)
		iw.line("DTSTART;VALUE=DATE:" + rec.DueDate.Time().Format("20060102"))
		iw.line("DTEND;VALUE=DATE:" + rec.DueDate.AddDays(1).Time().Format("20060102"))
		iw.line("SUMMARY:" + escapeICS(rec.Name))
		if rec.Summary != "" {
			iw.line("DESCRIPTION:" + escapeICS(rec.Summary))
		}
		for _, reminder := range opts.Reminders {
			iw.line("BEGIN:VALARM")
			iw.line("ACTION:DISPLAY")
			iw.line("DESCRIPTION:" + escapeICS("Reminder: "+rec.Name))
			iw.line("TRIGGER:" + reminder.Trigger())
			iw.line("END:VALARM")
		}
		iw.line("END:VEVENT")
	}

	iw.line("END:VCALENDAR")
	return iw.err
}

// WriteCSV writes due_date,name,summary rows.
func WriteCSV(w io.Writer, records []scholarship.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"due_date", "name", "summary"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write([]string{rec.DueDate.String(), rec.Name, rec.Summary}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the records as a JSON document.
func WriteJSON(w io.Writer, records []scholarship.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"count":        len(records),
		"scholarships": records,
	})
}

// Write dispatches on format.
func Write(w io.Writer, format string, records []scholarship.Record, opts ICSOptions) error {
	switch format {
	case FormatICS:
		return WriteICS(w, records, opts)
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidExport, format)
	}
}

// ContentType returns the media type for format.
func ContentType(format string) string {
	switch format {
	case FormatICS:
		return "text/calendar; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// eventUIDs derives a UID per record from its date and name. A UID already
// handed out gets the lowest free numeric suffix instead.
func eventUIDs(records []scholarship.Record) []string {
	used := make(map[string]bool, len(records))
	uids := make([]string, len(records))
	for i, rec := range records {
		base := rec.DueDate.String() + "-" + slug(rec.Name)
		uid := base
		for n := 2; used[uid]; n++ {
			uid = fmt.Sprintf("%s-%d", base, n)
		}
		used[uid] = true
		uids[i] = uid + "@scholarships.scu.edu"
	}
	return uids
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func escapeICS(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)
	return r.Replace(s)
}

type icsWriter struct {
	w   io.Writer
	err error
}

// line writes one content line with CRLF, folding at 75 octets without
// splitting UTF-8 sequences.
func (iw *icsWriter) line(s string) {
	if iw.err != nil {
		return
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		n := len(string(r))
		if width+n > 75 {
			b.WriteString("\r\n ")
			width = 1
		}
		b.WriteRune(r)
		width += n
	}
	b.WriteString("\r\n")
	_, iw.err = io.WriteString(iw.w, b.String())
}
