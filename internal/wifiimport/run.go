package wifiimport

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

// DefaultBatchSize bounds how many rows go into one insert transaction.
const DefaultBatchSize = 500

type Config struct {
	CSVPath   string
	BatchSize int
}

// Result reports what one ingestion attempt did.
type Result struct {
	// Skipped is true when a previous run already completed and nothing
	// was read or written.
	Skipped  bool
	Imported int
	Rejected int
}

// Run performs the one-shot bulk import: read → validate → chunk → insert,
// one transaction per chunk so partial progress is durable and no
// transaction grows unbounded.
//
// At-most-once: if the import_control flag is already set, Run returns
// immediately without touching the source. The flag itself commits in the
// same transaction as the final chunk, so a set flag always means every row
// is present. Callers must not run two imports concurrently against the
// same store; the check-then-act on the flag is not serialized here, and
// the primary key is the backstop.
//
// A unique-constraint violation aborts the whole run (wrapped in
// wifi.ErrIntegrity): it signals leftover rows from an earlier partial
// attempt, which needs an operator, not a blind retry.
func Run(db *gorm.DB, cfg Config) (Result, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	var ctl wifi.ImportControl
	err := db.First(&ctl, "id = ?", true).Error
	switch {
	case err == nil && ctl.Imported:
		log.Println("[wifi-import] already imported, skipping")
		return Result{Skipped: true}, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return Result{}, fmt.Errorf("read import control: %w", err)
	}

	src, err := OpenCSV(cfg.CSVPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	// Rejections are logged and counted; a bad row never aborts the run.
	rejected := 0
	next := func() (wifi.WifiPoint, error) {
		for {
			raw, err := src.Next()
			if err != nil {
				return wifi.WifiPoint{}, err
			}
			point, rerr := ValidateRow(raw)
			if rerr != nil {
				rejected++
				log.Printf("[wifi-import] rejected row: %v", rerr)
				continue
			}
			return point, nil
		}
	}

	batcher, err := NewBatcher(next, cfg.BatchSize)
	if err != nil {
		return Result{}, err
	}

	// One chunk of lookahead so the completion flag can commit together
	// with the last insert.
	imported := 0
	var pending []wifi.WifiPoint
	for {
		chunk, err := batcher.NextChunk()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{Imported: imported, Rejected: rejected},
				fmt.Errorf("read source: %w", err)
		}
		if pending != nil {
			if err := insertChunk(db, pending, false); err != nil {
				return Result{Imported: imported, Rejected: rejected}, err
			}
			imported += len(pending)
		}
		pending = chunk
	}

	if err := insertChunk(db, pending, true); err != nil {
		return Result{Imported: imported, Rejected: rejected}, err
	}
	imported += len(pending)

	log.Printf("[wifi-import] imported %d points (%d rows rejected)", imported, rejected)
	return Result{Imported: imported, Rejected: rejected}, nil
}

// insertChunk bulk-inserts one chunk in a single transaction, rolling back
// on any failure. When final is set, the import_control flag is written in
// the same transaction; chunk may then be empty (empty source still gets
// its flag).
func insertChunk(db *gorm.DB, chunk []wifi.WifiPoint, final bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(chunk) > 0 {
			if err := tx.Create(&chunk).Error; err != nil {
				return wifi.ClassifyStorage(fmt.Errorf("insert chunk of %d: %w", len(chunk), err))
			}
		}
		if final {
			ctl := wifi.ImportControl{ID: true, Imported: true}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"imported"}),
			}).Create(&ctl).Error
			if err != nil {
				return fmt.Errorf("write import flag: %w", err)
			}
		}
		return nil
	})
}
