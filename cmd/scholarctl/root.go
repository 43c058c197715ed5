package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every command.
type options struct {
	file    string
	catalog string
	today   string
	json    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "scholarctl",
		Short: "Browse scholarship deadlines",
		Long:  `scholarctl lists scholarships, shows them on a month calendar,
looks up what is due on a date and exports deadlines to a calendar file.

Records come from a compiled-in catalog or from a YAML/JSON file:
  scholarctl list
  scholarctl --file records.yaml calendar --month 2024-12`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "Record file (YAML or JSON); overrides --catalog")
	flags.StringVar(&opts.catalog, "catalog", scholarship.CatalogSCU, "Compiled-in catalog name")
	flags.StringVar(&opts.today, "today", "", "Override today's date (YYYY-MM-DD)")
	flags.BoolVar(&opts.json, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newListCmd(opts),
		newLookupCmd(opts),
		newCalendarCmd(opts),
		newUpcomingCmd(opts),
		newExportCmd(opts),
		newViewCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

func (o *options) records() ([]scholarship.Record, error) {
	if o.file != "" {
		return scholarship.LoadFile(o.file)
	}
	return scholarship.LoadCatalog(o.catalog)
}

// finder loads the record set into a memory store and wraps it in a finder.
func (o *options) finder() (*finder.Service, error) {
	records, err := o.records()
	if err != nil {
		return nil, err
	}
	store := scholarship.NewMemoryStore(records)
	return finder.NewService(store, store, nil, nil), nil
}

func (o *options) todayDate() (scholarship.Date, error) {
	if o.today == "" {
		return scholarship.DateOf(time.Now()), nil
	}
	return scholarship.ParseDate(o.today)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
