package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"runtime"
	"strings"

	"github.com/mdouchement/foundit/internal/config"
	"github.com/mdouchement/foundit/internal/database"
	"github.com/mdouchement/foundit/internal/logger"
	"github.com/mdouchement/foundit/internal/server"
	"github.com/mdouchement/foundit/internal/server/service"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg     string
	verbose bool
)

func main() {
	c := &coral.Command{
		Use:     "foundit",
		Short:   "Campus lost and found server",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	dumpCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	dumpCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump every field of the reports")
	c.AddCommand(dumpCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func open() (config.Config, *logrus.Logger, database.Client, error) {
	konf, err := config.Load(cfg)
	if err != nil {
		return konf, nil, nil, errors.Wrap(err, "could not load configuration")
	}

	l, err := logger.New(konf.LogLevel, konf.LogFile)
	if err != nil {
		return konf, nil, nil, err
	}

	db, err := database.Open(konf.Storage.Driver, konf.Storage.Path, konf.Storage.Codec, database.Options{
		Logger:       l,
		StrictWrites: konf.Storage.StrictWrites,
	})
	if err != nil {
		return konf, l, nil, errors.Wrap(err, "could not open database")
	}

	if err = db.Init(); err != nil {
		db.Close()
		return konf, l, nil, errors.Wrap(err, "could not init database")
	}

	return konf, l, db, nil
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the lost item storage",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, l, db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			l.WithField("driver", konf.Storage.Driver).Infof("Storage ready at %s", konf.Storage.Path)
			return nil
		},
	}

	//
	dumpCmd = &coral.Command{
		Use:   "dump",
		Short: "Print the stored lost items, newest first",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			_, _, db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := service.NewListing(db).List()
			if err != nil {
				return err
			}

			if verbose {
				fmt.Println(litter.Sdump(items))
				return nil
			}

			for _, item := range items {
				fmt.Printf("%4d  %s  %-12s %s @ %s\n", item.ID, item.CreatedAt, item.Category, item.Title, item.Location)
			}
			return nil
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, l, db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			engine := server.EchoEngine(server.Controller{
				Version:     version,
				ServiceName: konf.ServiceName,
				Database:    db,
				Logger:      l,
			})
			server.PrintRoutes(os.Stdout, engine)

			address := konf.ListenAddress()
			message := "could not run server"
			l.Infof("Backend listening on %s", address)
			parts := strings.Split(address, ":")
			if len(parts) == 2 && parts[0] == "unix" {
				socketFile := parts[1]
				if _, err := os.Stat(socketFile); err == nil {
					l.Infof("Removing existing %s", socketFile)
					os.Remove(socketFile)
				}
				defer os.Remove(socketFile)
				listener, err := net.Listen(parts[0], socketFile)
				if err != nil {
					return err
				}
				return errors.Wrap(engine.Server.Serve(listener), message)
			}
			return errors.Wrap(engine.Start(address), message)
		},
	}
)
