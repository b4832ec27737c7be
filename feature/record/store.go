package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reading-tracker/core/reconcile"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const zstdSuffix = ".zst"

// Store reads and writes the reading record and raw payload archive.
type Store struct {
	cfg    Config
	logger *zap.Logger
}

// NewStore creates a new record store.
func NewStore(cfg Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{cfg: cfg, logger: logger}
}

// Path returns the record file path.
func (s *Store) Path() string {
	return s.cfg.RecordPath()
}

// Load reads the record. A missing file yields the empty default record.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.cfg.RecordPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No reading record yet", zap.String("path", s.cfg.RecordPath()))
			return Empty(), nil
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", s.cfg.RecordPath(), err)
	}
	if rec.ReadingDays == nil {
		rec.ReadingDays = reconcile.ReadingDays{}
	}
	return &rec, nil
}

// Save replaces the record on disk. TotalDays is recomputed from ReadingDays.
func (s *Store) Save(rec *Record) error {
	if rec.ReadingDays == nil {
		rec.ReadingDays = reconcile.ReadingDays{}
	}
	rec.TotalDays = len(rec.ReadingDays)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := writeFileAtomic(s.cfg.RecordPath(), data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	s.logger.Info("Saved reading record",
		zap.String("path", s.cfg.RecordPath()),
		zap.Int("total_days", rec.TotalDays),
	)
	return nil
}

// SaveRaw archives the upstream payload of the last sync.
func (s *Store) SaveRaw(p reconcile.Payload) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode raw payload: %w", err)
	}

	path := s.cfg.RawPath()
	if strings.HasSuffix(path, zstdSuffix) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, make([]byte, 0, len(data)/2))
		_ = enc.Close()
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write raw payload: %w", err)
	}
	s.logger.Info("Saved raw payload", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// LoadRaw reads the archived payload, decompressing it when it was saved with zstd.
func (s *Store) LoadRaw() (reconcile.Payload, error) {
	path := s.cfg.RawPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw payload: %w", err)
	}

	if strings.HasSuffix(path, zstdSuffix) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("failed to decompress raw payload: %w", err)
		}
	}

	var p reconcile.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode raw payload %s: %w", path, err)
	}
	if p == nil {
		return nil, fmt.Errorf("raw payload %s is not a JSON object", path)
	}
	return p, nil
}

// writeFileAtomic writes to a temporary file and renames it over path, so an
// interrupted write never leaves a truncated file behind.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
