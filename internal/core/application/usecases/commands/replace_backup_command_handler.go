package commands

import (
	"context"
)

// ReplaceBackupCommandHandler handles the business logic for swapping the
// backup pool's contents wholesale. The previous contents are discarded,
// so callers performing an inventory count should read the pool first.
type ReplaceBackupCommandHandler struct {
	uowFactory BackupUoWFactory
}

// NewReplaceBackupCommandHandler creates a handler for backup replacement.
// Requires a BackupUoWFactory for transactional pool updates.
func NewReplaceBackupCommandHandler(uowFactory BackupUoWFactory) ReplaceBackupCommandHandler {
	return ReplaceBackupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the backup replacement command.
func (h ReplaceBackupCommandHandler) Handle(ctx context.Context, cmd ReplaceBackupCommand) error {
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

	if err := uow.Backup().SetAll(cmd.Lots()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
