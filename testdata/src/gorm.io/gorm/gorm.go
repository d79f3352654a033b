package gorm

// DB is a gorm database handle.
type DB struct{ Error error }
