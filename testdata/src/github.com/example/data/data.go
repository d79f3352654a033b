package data

// AppDbContext is the application's unit of work.
type AppDbContext struct{ dsn string }

// ReportingDbContext connects to the reporting replica.
type ReportingDbContext struct{ dsn string }

// DbContextOptions configures a context; it is not one.
type DbContextOptions struct{ Timeout int }

// AppDBContext differs from AppDbContext only in case.
type AppDBContext struct{}

// IOrderService is the abstraction controllers should depend on.
type IOrderService interface {
	Place(id string) error
}

// Contexts is an alias for the primary database context.
type Contexts = AppDbContext
