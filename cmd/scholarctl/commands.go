package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/transport"
	"github.com/rpggio/scholarships/internal/view"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all scholarships in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.finder()
			if err != nil {
				return err
			}
			records, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), records)
			}
			return printRecords(cmd.OutOrStdout(), records)
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup DATE",
		Short: "Show the scholarships due on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := scholarship.ParseDate(args[0])
			if err != nil {
				return err
			}
			svc, err := opts.finder()
			if err != nil {
				return err
			}
			details, err := svc.Lookup(cmd.Context(), date)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), details)
			}

			out := cmd.OutOrStdout()
			if details.Message != "" {
				_, _ = fmt.Fprintln(out, details.Message)
				return nil
			}
			_, _ = fmt.Fprintf(out, "Scholarships due on %s:\n", date.Long())
			for _, rec := range details.Scholarships {
				_, _ = fmt.Fprintf(out, "\n%s\n  %s\n", rec.Name, rec.Summary)
			}
			return nil
		},
	}
}

func newCalendarCmd(opts *options) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month calendar with due dates marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}
			m := calendar.MonthOf(today)
			if month != "" {
				if m, err = calendar.ParseMonth(month); err != nil {
					return err
				}
			}
			svc, err := opts.finder()
			if err != nil {
				return err
			}
			cal, err := svc.Calendar(cmd.Context(), m)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), cal)
			}
			printMonth(cmd.OutOrStdout(), cal.Grid)
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show (YYYY-MM); defaults to the current month")
	return cmd
}

func newUpcomingCmd(opts *options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List deadlines from today through the next N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}
			svc, err := opts.finder()
			if err != nil {
				return err
			}
			deadlines, err := svc.Upcoming(cmd.Context(), today, days)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), deadlines)
			}

			out := cmd.OutOrStdout()
			if len(deadlines) == 0 {
				_, _ = fmt.Fprintf(out, "Nothing due in the next %d days.\n", days)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DUE\tDAYS LEFT\tNAME")
			for _, d := range deadlines {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Record.DueDate, d.DaysLeft, d.Record.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 30, "Horizon in days; 0 shows every future deadline")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		format    string
		reminders []string
		name      string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export deadlines as iCalendar, CSV or JSON",
		Long:  `Export every deadline as an all-day event. Reminders become alarms
at a wall-clock time some days before the due date.

Examples:
  scholarctl export -o deadlines.ics --reminder 2@18:00 --reminder 0@08:00
  scholarctl export --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			icsOpts := transport.ICSOptions{CalendarName: name}
			for _, raw := range reminders {
				reminder, err := transport.ParseReminder(raw)
				if err != nil {
					return err
				}
				icsOpts.Reminders = append(icsOpts.Reminders, reminder)
			}
			records, err := opts.records()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				out = file
			}
			return transport.Write(out, strings.ToLower(format), records, icsOpts)
		},
	}
	cmd.Flags().StringVar(&format, "format", transport.FormatICS, "Output format: ics, csv or json")
	cmd.Flags().StringArrayVar(&reminders, "reminder", nil, "Alarm as DAYS@HH:MM before the due date (repeatable)")
	cmd.Flags().StringVar(&name, "name", "", "Calendar name for ics output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newViewCmd(opts *options) *cobra.Command {
	var query view.Query

	cmd := &cobra.Command{
		Use:       "view NAME",
		Short:     "Render one page of the browser as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: viewNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}
			query.View = args[0]
			state, err := query.State(today)
			if err != nil {
				return err
			}
			records, err := opts.records()
			if err != nil {
				return err
			}
			payload, err := view.Render(state, records)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().StringVarP(&query.Month, "month", "m", "", "Calendar month (YYYY-MM)")
	cmd.Flags().StringVar(&query.Date, "date", "", "Selected calendar date (YYYY-MM-DD)")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check that every record has a name and a real due date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			records, err := opts.records()
			if err != nil {
				return err
			}
			idx := calendar.GroupByDate(records)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d scholarships on %d dates OK\n", len(records), idx.Len())
			return nil
		},
	}
}

func viewNames() []string {
	names := view.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}

func printRecords(w io.Writer, records []scholarship.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DUE\tNAME")
	for _, rec := range records {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", rec.DueDate.Long(), rec.Name)
	}
	return tw.Flush()
}

// printMonth draws a Sunday-first grid. Days with something due are starred
// and listed below the grid.
func printMonth(w io.Writer, grid calendar.MonthGrid) {
	_, _ = fmt.Fprintln(w, grid.Title)
	_, _ = fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")
	for _, week := range grid.Weeks {
		var b strings.Builder
		for _, day := range week {
			if !day.InMonth {
				b.WriteString("    ")
				continue
			}
			mark := " "
			if len(day.Scholarships) > 0 {
				mark = "*"
			}
			fmt.Fprintf(&b, "%3d%s", day.Date.Day(), mark)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	if grid.Due == 0 {
		_, _ = fmt.Fprintln(w, "\nNo scholarships due this month.")
		return
	}
	_, _ = fmt.Fprintln(w)
	for _, week := range grid.Weeks {
		for _, day := range week {
			if !day.InMonth {
				continue
			}
			for _, rec := range day.Scholarships {
				_, _ = fmt.Fprintf(w, "%s  %s\n", day.Date, rec.Name)
			}
		}
	}
}

