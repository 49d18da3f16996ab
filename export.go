package backoffice

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
)

// This file contains code to archive the book as JSONL, one record per line,
// in a way that is human-readable and git-friendly.

type recordKind string

const (
	kindClient       recordKind = "client"
	kindContribution recordKind = "contribution"
	kindInvestment   recordKind = "investment"
)

// encodeRecord marshals a record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func encodeRecord(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write record: %w", err)
	}
	return nil
}

// ExportBook writes the whole book to w as JSONL. Each line is one record
// tagged with its kind; clients come before the records that reference them,
// so the stream restores in order.
func (s *Store) ExportBook(w io.Writer) error {
	clients, err := s.Clients()
	if err != nil {
		return fmt.Errorf("cannot load clients: %w", err)
	}
	for i := range clients {
		rec := struct {
			Record recordKind `json:"record"`
			Client
		}{kindClient, clients[i]}
		if err := encodeRecord(w, rec); err != nil {
			return err
		}
	}
	for i := range clients {
		contributions, err := s.Contributions(clients[i].ID)
		if err != nil {
			return fmt.Errorf("cannot load contributions of client %d: %w", clients[i].ID, err)
		}
		for j := range contributions {
			rec := struct {
				Record recordKind `json:"record"`
				Contribution
			}{kindContribution, contributions[j]}
			if err := encodeRecord(w, rec); err != nil {
				return err
			}
		}
		investments, err := s.Investments(clients[i].ID)
		if err != nil {
			return fmt.Errorf("cannot load investments of client %d: %w", clients[i].ID, err)
		}
		for j := range investments {
			rec := struct {
				Record recordKind `json:"record"`
				Investment
			}{kindInvestment, investments[j]}
			if err := encodeRecord(w, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// ImportBook restores a stream previously written by ExportBook into an empty
// book. Rows are written verbatim, ids and derived fields included, so a
// restored book is byte-for-byte the one that was archived.
func (s *Store) ImportBook(r io.Reader) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&Client{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errors.New("cannot import into a non-empty book")
		}

		scanner := bufio.NewScanner(r)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			var identifier struct {
				Record recordKind `json:"record"`
			}
			if err := json.Unmarshal(line, &identifier); err != nil {
				return fmt.Errorf("could not identify record on line %d: %w", lineNo, err)
			}

			var row any
			switch identifier.Record {
			case kindClient:
				row = &Client{}
			case kindContribution:
				row = &Contribution{}
			case kindInvestment:
				row = &Investment{}
			default:
				return fmt.Errorf("unknown record kind %q on line %d", identifier.Record, lineNo)
			}
			if err := json.Unmarshal(line, row); err != nil {
				return fmt.Errorf("invalid %s record on line %d: %w", identifier.Record, lineNo, err)
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("cannot restore %s record on line %d: %w", identifier.Record, lineNo, err)
			}
		}
		return scanner.Err()
	}, serializable)
}
