package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Customer is the buyer identity captured on an order. Name and email are
// required; the account reference is optional since guest checkout exists.
type Customer struct {
	name      string
	email     string
	phone     string
	accountID *kernel.UUID
}

// NewCustomer validates and builds a customer identity.
func NewCustomer(name, email, phone string, accountID *kernel.UUID) (Customer, error) {
	c := Customer{}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	c.phone = strings.TrimSpace(phone)
	if accountID != nil {
		if err := accountID.Validate(); err != nil {
			return Customer{}, err
		}
		id := *accountID
		c.accountID = &id
	}
	return c, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

// AccountID returns the linked user account, or nil for guest orders.
func (c Customer) AccountID() *kernel.UUID {
	return c.accountID
}

// Validate reports whether the customer was produced by the constructor.
func (c Customer) Validate() error {
	if c.name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	if c.email == "" {
		return errs.NewValueIsRequiredError("customer_email")
	}
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customer_email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("customer_email")
	}
	c.email = email
	return nil
}
