package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back and
	// that same error is returned unchanged. Otherwise it's committed.
	// All repository operations obtained from the factory share the one
	// database transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the callback is part of one atomic
// unit.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// FilterRepo returns a FilterRepository bound to the current transaction.
	FilterRepo() FilterRepository
}
