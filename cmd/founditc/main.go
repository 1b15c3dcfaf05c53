package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mdouchement/foundit/internal/client"
	"github.com/mdouchement/foundit/pkg/libfoundit"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	endpoint string
	verbose  bool
	params   libfoundit.LostItemParams
)

func main() {
	c := &cobra.Command{
		Use:     "founditc",
		Short:   "Campus lost and found client",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}

	def := os.Getenv("FOUNDIT_ENDPOINT")
	if def == "" {
		def = "http://localhost:4000"
	}
	c.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", def, "foundit server endpoint")

	listCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump every field of the reports")

	postCmd.Flags().StringVar(&params.Title, "title", "", "Object name")
	postCmd.Flags().StringVar(&params.Description, "description", "", "Detailed description")
	postCmd.Flags().StringVar(&params.Category, "category", "", "Category (electronics, documents, keys, bags, other...)")
	postCmd.Flags().StringVar(&params.Location, "location", "", "Where it was lost")
	postCmd.Flags().StringVar(&params.Date, "date", "", "When it was lost")

	c.AddCommand(healthCmd)
	c.AddCommand(listCmd)
	c.AddCommand(postCmd)
	c.AddCommand(backupCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check the foundit server status",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := libfoundit.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}
			return client.Health(os.Stdout, c)
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Browse the lost item board",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := libfoundit.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}
			return client.List(os.Stdout, c, verbose)
		},
	}

	postCmd = &cobra.Command{
		Use:   "post",
		Short: "Report a lost item",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := libfoundit.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}
			return client.Post(os.Stdout, c, params)
		},
	}

	backupCmd = &cobra.Command{
		Use:   "backup",
		Short: "Backup the lost item board in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := libfoundit.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}
			_, err = client.Backup(os.Stdout, c, ".", time.Now())
			return err
		},
	}
)
