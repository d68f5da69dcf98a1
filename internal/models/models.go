package models

// All returns every GORM model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&OptionsSpread{},
		&ScanRun{},
		&SavedFilter{},
		&AuditLog{},
	}
}
