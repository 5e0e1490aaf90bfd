// Package category contains the catalog category entity. Categories form a
// single-level-or-deeper tree via an optional parent reference and carry a
// URL slug derived from the name.
package category

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Status marks whether a category is visible in the catalog.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Validate checks the status against the fixed enum.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return errs.NewValueIsInvalidError("category status")
	}
}

// Slugify derives a URL slug from a display name: lowercased, runs of
// characters outside [a-z0-9-] collapsed to a single hyphen, no leading or
// trailing hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// Category is a catalog grouping. The slug is always derived from the name
// and kept in sync on rename; uniqueness is enforced by storage.
type Category struct {
	id          kernel.UUID
	name        string
	slug        string
	description string
	parentID    *kernel.UUID
	status      Status

	isConstructed bool
}

// NewCategory creates an active category with a slug derived from the name.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from persistence. The stored slug
// is kept as-is rather than re-derived, so historical slugs survive slug
// algorithm changes.
func RestoreCategory(
	id kernel.UUID,
	name, slug, description string,
	parentID *kernel.UUID,
	status Status,
) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	c.name = name
	c.slug = slug
	c.description = description
	c.parentID = copyID(parentID)
	c.status = status
	return c, nil
}

// Validate ensures the instance came out of a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID      { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) Description() string  { return c.description }
func (c *Category) Status() Status       { return c.status }

// ParentID returns the parent category id, or nil for a root category.
func (c *Category) ParentID() *kernel.UUID {
	return copyID(c.parentID)
}

// Rename changes the display name and re-derives the slug.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

// SetDescription updates the free-text description.
func (c *Category) SetDescription(description string) {
	c.description = description
}

// SetParent moves the category under another one, or to the root when nil.
// A category can never be its own parent.
func (c *Category) SetParent(parentID *kernel.UUID) error {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return err
		}
		if parentID.IsEqual(c.id) {
			return errs.NewValueIsInvalidError("parent category")
		}
	}
	c.parentID = copyID(parentID)
	return nil
}

// SetStatus changes the catalog visibility.
func (c *Category) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	slug := Slugify(name)
	if slug == "" {
		return errs.NewValueIsInvalidError("name")
	}

	c.name = name
	c.slug = slug
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
