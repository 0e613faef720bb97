package memory

import (
	"context"

	"offerfeed/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager serializes units of work against the store.
// Writes made before fn fails are not rolled back.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store's transaction lock.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	return fn(storeFactory{store: tm.store})
}

type storeFactory struct {
	store *Store
}

func (f storeFactory) NewFollowRepository() repository.FollowRepository {
	return f.store
}

func (f storeFactory) NewCommerceRepository() repository.CommerceRepository {
	return f.store
}
