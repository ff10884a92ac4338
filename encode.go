package wallet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as JSON numbers, matching the historical store
	// format.
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeEntries reads entries from a stream of JSONL data, one entry per
// line. Empty lines are skipped.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("could not decode entry line %q: %w", string(line), err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return entries, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeEntries persists entries to an io.Writer in JSONL format, in the
// order given.
func EncodeEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
