package record

import "path/filepath"

// Config holds the locations of persisted files.
type Config struct {
	// Dir is the directory holding the record and raw payload.
	Dir string `mapstructure:"dir" default:"data" validate:"required"`
	// RecordFile is the reconciled reading record.
	RecordFile string `mapstructure:"record_file" default:"reading_data.json" validate:"required"`
	// RawFile is the archived upstream payload of the last sync.
	RawFile string `mapstructure:"raw_file" default:"kindle_data.json" validate:"required"`
	// CompressRaw stores the raw payload zstd-compressed (RawFile + ".zst").
	CompressRaw bool `mapstructure:"compress_raw" default:"false"`
}

// RecordPath returns the full path of the reading record.
func (c Config) RecordPath() string {
	return filepath.Join(c.Dir, c.RecordFile)
}

// RawPath returns the full path of the raw payload archive.
func (c Config) RawPath() string {
	p := filepath.Join(c.Dir, c.RawFile)
	if c.CompressRaw {
		p += zstdSuffix
	}
	return p
}
