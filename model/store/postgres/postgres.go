package postgres

// Postgres implements the store interface on the shared gorm connection
// initialized by config.InitDB.
type Postgres struct{}
