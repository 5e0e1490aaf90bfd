package commands

import (
	"errors"

	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/errs"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand represents a batch write of store-wide settings
// within one settings category.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	category setting.Category
	values   map[string]string

	isConstructed bool
}

// NewUpdateSettingsCommand creates a settings write command. The category
// must be a known settings group and keys must be non-empty; values may be
// anything including empty strings.
func NewUpdateSettingsCommand(category setting.Category, values map[string]string) (UpdateSettingsCommand, error) {
	if err := category.Validate(); err != nil {
		return UpdateSettingsCommand{}, err
	}
	if len(values) == 0 {
		return UpdateSettingsCommand{}, errs.NewValueIsRequiredError("settings")
	}

	copied := make(map[string]string, len(values))
	for k, v := range values {
		if k == "" {
			return UpdateSettingsCommand{}, errs.NewValueIsRequiredError("setting key")
		}
		copied[k] = v
	}

	return UpdateSettingsCommand{category: category, values: copied, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateSettingsCommandIsNotConstructed
	}
	return nil
}

// Category returns the settings group being written.
func (c UpdateSettingsCommand) Category() setting.Category {
	return c.category
}

// Values returns the settings to write.
func (c UpdateSettingsCommand) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
