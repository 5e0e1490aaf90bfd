package commands

import (
	"context"
	"sort"
)

// UpdateSettingsCommandHandler writes store-wide settings in one transaction.
// Keys are written in sorted order so two concurrent batches upsert rows in
// the same sequence.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings writes.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the settings write command.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	values := cmd.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingsRepo := uow.SettingsRepository()
	for _, k := range keys {
		if err := settingsRepo.Set(ctx, cmd.Category(), k, values[k]); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
