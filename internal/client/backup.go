package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mdouchement/foundit/pkg/libfoundit"
	"github.com/pkg/errors"
)

// Backup fetchs all the reports and stores them in the given directory.
// It returns the name of the written file.
func Backup(w io.Writer, c libfoundit.Client, dir string, now time.Time) (string, error) {
	items, err := c.ListLostItems()
	if err != nil {
		return "", errors.Wrap(err, "could not get lost items")
	}

	filename := filepath.Join(dir, fmt.Sprintf("lost_items_%s.json", now.Format("20060102150405")))
	if err = backup(items, filename); err != nil {
		return "", errors.Wrap(err, "lost items")
	}

	fmt.Fprintf(w, "%d reports saved to %s\n", len(items), filename)
	return filename, nil
}

func backup(v any, filename string) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize value to backup")
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create backup file")
	}
	defer f.Close()

	_, err = f.Write(payload)
	if err != nil {
		return errors.Wrap(err, "could not write backuped values")
	}

	return errors.Wrap(f.Sync(), "could not backup")
}
