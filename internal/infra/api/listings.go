package api

import (
	"context"
	"net/http"

	"mpmcp/internal/domain"
)

func (c *Client) ListIdentificationTypes(ctx context.Context) ([]domain.IdentificationType, error) {
	var types []domain.IdentificationType
	err := c.DoJSON(ctx, Request{
		Method: http.MethodGet,
		URL:    c.baseURL + domain.IdentificationTypesPath,
	}, &types)
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	err := c.DoJSON(ctx, Request{
		Method: http.MethodGet,
		URL:    c.baseURL + domain.PaymentMethodsPath,
	}, &methods)
	if err != nil {
		return nil, err
	}
	return methods, nil
}
