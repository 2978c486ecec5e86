package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"mpmcp/internal/domain"
)

// CreateCustomer registers a customer by email. The idempotency key makes
// the upstream write safe to re-issue after a token refresh.
func (c *Client) CreateCustomer(ctx context.Context, email string) (domain.Customer, error) {
	header := http.Header{}
	header.Set("X-Idempotency-Key", uuid.NewString())

	var customer domain.Customer
	err := c.DoJSON(ctx, Request{
		Method: http.MethodPost,
		URL:    c.baseURL + domain.CustomersPath,
		Body:   map[string]string{"email": email},
		Header: header,
	}, &customer)
	if err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}
