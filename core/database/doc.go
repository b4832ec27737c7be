// Package database opens the optional history database.
//
// It wraps GORM to configure either a local SQLite file (the default) or a MySQL
// server from the application's configuration. The database only mirrors the
// reading days for querying elsewhere; the JSON record remains the source the
// page and statistics are built from.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
