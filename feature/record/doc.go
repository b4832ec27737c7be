// Package record persists the reading record and the raw upstream payload.
//
// The record is a JSON object:
//
//	{
//	  "reading_days": {"2024-01-01": 1, ...},
//	  "total_days": 1,
//	  "last_updated": "2024-01-01 08:00:00"
//	}
//
// Every sync rebuilds the record from the current payload and replaces the file
// as a whole; nothing is merged from the previous file. Writes go through a
// temporary file and a rename so an interrupted run keeps the old record.
//
// The raw payload is archived next to the record, optionally zstd-compressed,
// so reconciliation can be re-run offline.
package record
