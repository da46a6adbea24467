package commands

import (
	"context"
)

// RestockBackupCommandHandler handles the business logic for topping up
// the shared backup pool. Quantities accumulate on the pool's existing
// entry for the ingredient; the entry keeps its original unit price.
type RestockBackupCommandHandler struct {
	uowFactory BackupUoWFactory
}

// NewRestockBackupCommandHandler creates a handler for backup restocking.
// Requires a BackupUoWFactory for transactional pool updates.
func NewRestockBackupCommandHandler(uowFactory BackupUoWFactory) RestockBackupCommandHandler {
	return RestockBackupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the backup restock command.
func (h RestockBackupCommandHandler) Handle(ctx context.Context, cmd RestockBackupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Backup().Add(cmd.Lot()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
