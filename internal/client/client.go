package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mdouchement/foundit/pkg/libfoundit"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

// Health prints the status of the server.
func Health(w io.Writer, c libfoundit.Client) error {
	health, err := c.Health()
	if err != nil {
		return errors.Wrap(err, "could not get server health")
	}

	fmt.Fprintf(w, "%s: %s\n", health.Service, health.Status)
	return nil
}

// List prints the lost-item board, newest first.
func List(w io.Writer, c libfoundit.Client, verbose bool) error {
	items, err := c.ListLostItems()
	if err != nil {
		return errors.Wrap(err, "could not list lost items")
	}

	if verbose {
		fmt.Fprintln(w, litter.Sdump(items))
		return nil
	}

	return PrintLostItems(w, items)
}

// Post reports a lost item and prints the stored report.
func Post(w io.Writer, c libfoundit.Client, params libfoundit.LostItemParams) error {
	item, err := c.CreateLostItem(params)
	if err != nil {
		return errors.Wrap(err, "could not report lost item")
	}

	fmt.Fprintf(w, "Reported %q with id %d at %s\n", item.Title, item.ID, item.CreatedAt)
	return nil
}

// PrintLostItems writes the reports as an aligned table.
func PrintLostItems(w io.Writer, items []libfoundit.LostItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLOCATION\tDATE\tCREATED AT")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.Category, item.Location, item.Date, item.CreatedAt)
	}
	return tw.Flush()
}
