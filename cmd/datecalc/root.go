package main

import (
	"encoding/json"
	"fmt"
	"github.com/cric2000/calenderService/services"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateOptions mirrors the query parameters of the HTTP endpoints
type dateOptions struct {
	unit    string
	value   string
	date    string
	jsonOut bool
}

func newRootCmd(out io.Writer, now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:   "datecalc",
		Short: "Add or subtract days or weeks from a date",
		Long: `datecalc computes a new date by adding or subtracting a number of
days or weeks from a reference date.

Dates are written dd-MMM-yyyy (20-Nov-2000) or dd-mm-yyyy (20-11-2000).
Without --date the current date is used.

Examples:
  datecalc add --type days --value 10
  datecalc sub --type weeks --value 2 --date 20-Nov-2000
  datecalc add --type days --value 30 --date 01-02-2024 --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDateCmd("add", "Add days or weeks to a date", services.DirectionAdd, out, now),
		newDateCmd("sub", "Subtract days or weeks from a date", services.DirectionSubtract, out, now),
	)
	return root
}

func newDateCmd(use, short string, dir services.Direction, out io.Writer, now func() time.Time) *cobra.Command {
	opts := &dateOptions{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(out, dir, opts, now())
		},
	}
	addDateFlags(cmd.Flags(), opts)
	return cmd
}

func addDateFlags(fs *pflag.FlagSet, opts *dateOptions) {
	fs.StringVarP(&opts.unit, "type", "t", "",
		"unit of the amount: days or weeks")
	fs.StringVarP(&opts.value, "value", "v", "",
		"number of units, 0 to 99999")
	fs.StringVarP(&opts.date, "date", "d", "",
		"reference date, dd-MMM-yyyy or dd-mm-yyyy (default: today)")
	fs.BoolVar(&opts.jsonOut, "json", false,
		"print the result as JSON")
}

func runDate(out io.Writer, dir services.Direction, opts *dateOptions, now time.Time) error {
	date, err := services.ComputeDate(dir, services.DateParams{
		Type:  opts.unit,
		Value: opts.value,
		Date:  opts.date,
	}, now)

	if !opts.jsonOut {
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, date)
		return err
	}

	payload := map[string]string{"date": date}
	if err != nil {
		payload = map[string]string{"error": err.Error()}
	}
	if encErr := json.NewEncoder(out).Encode(payload); encErr != nil {
		return fmt.Errorf("writing result: %w", encErr)
	}
	return err
}
