package env

// BackupEnvironment drives the scheduled remote backup sync. An empty
// schedule disables it.
type BackupEnvironment struct {
	Schedule string `validate:"omitempty,cron"`
}

func (e BackupEnvironment) Enabled() bool {
	return e.Schedule != ""
}
