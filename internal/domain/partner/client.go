package partner

import (
	"strings"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
)

// Client represents an export customer in the partner context.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(100);not null"`
	Country string `gorm:"type:varchar(50)"`
	Email   string `gorm:"type:varchar(200);index"`
	Phone   string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name, country, email, phone string) (*Client, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if err := validatePartnerEmail(email); err != nil {
		return nil, err
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Country:           strings.TrimSpace(country),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Phone:             strings.TrimSpace(phone),
	}, nil
}

// Update updates the client's editable fields
func (c *Client) Update(name, country, email, phone string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if err := validatePartnerEmail(email); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Country = strings.TrimSpace(country)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

func validatePartnerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePartnerEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil
	}
	if !strings.Contains(trimmed, "@") || len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}
