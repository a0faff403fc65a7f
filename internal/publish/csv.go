package publish

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// appendRows appends semicolon-delimited rows to a table file, writing the
// header only when the file does not exist yet.
func appendRows(path string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if newFile {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header %s: %w", path, err)
		}
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write row %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// overwriteRows replaces the whole table atomically: write a temp file in the
// same directory, then rename over the target, so the polling dashboard never
// observes a half-written file.
func overwriteRows(path string, header []string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	fail := func(err error) error {
		f.Close()
		os.Remove(tmp)
		return err
	}
	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return fail(fmt.Errorf("write header %s: %w", tmp, err))
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fail(fmt.Errorf("write row %s: %w", tmp, err))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// writeLines writes a cycle-scoped artifact in one shot, one line per event.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
