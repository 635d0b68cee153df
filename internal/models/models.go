package models

// All lists every persisted entity for AutoMigrate and the destructive
// reseed. Order matters for dropping: children first.
func All() []any {
	return []any{
		&Admin{},
		&Role{},
		&User{},
		&Site{},
		&Location{},
		&DeviceGroup{},
		&DeviceCredential{},
		&Device{},
		&DevicePassword{},
		&BackupHistory{},
	}
}
