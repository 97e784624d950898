package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// ListCustomers fetches all customers. The endpoint may answer with a bare
// array or a HAL envelope; either way the result is a plain slice.
func ListCustomers(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers", baseURL)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := doJSON(httpClient, req, "list customers", &raw); err != nil {
		return nil, err
	}
	return decodeCollection[types.Customer](raw, "customers")
}

// GetCustomer fetches a single customer by its resource URL or bare id.
func GetCustomer(ctx context.Context, httpClient *http.Client, baseURL, urlOrID string) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, mutationURL(baseURL, "customers", urlOrID), nil)
	if err != nil {
		return nil, err
	}
	var c types.Customer
	if err := doJSON(httpClient, req, "get customer", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCustomer posts a new customer and returns the created resource.
func CreateCustomer(ctx context.Context, httpClient *http.Client, baseURL string, form types.CustomerForm) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers", baseURL)
	req, err := newJSONRequest(ctx, http.MethodPost, url, form)
	if err != nil {
		return nil, err
	}
	var c types.Customer
	if err := doJSON(httpClient, req, "create customer", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCustomer puts the form to the customer's resource URL and returns
// the updated resource.
func UpdateCustomer(ctx context.Context, httpClient *http.Client, baseURL, urlOrID string, form types.CustomerForm) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPut, mutationURL(baseURL, "customers", urlOrID), form)
	if err != nil {
		return nil, err
	}
	var c types.Customer
	if err := doJSON(httpClient, req, "update customer", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCustomer deletes a customer by resource URL or bare id. Resolves
// to no value on any 2xx.
func DeleteCustomer(ctx context.Context, httpClient *http.Client, baseURL, urlOrID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := newJSONRequest(ctx, http.MethodDelete, mutationURL(baseURL, "customers", urlOrID), nil)
	if err != nil {
		return err
	}
	return doJSON(httpClient, req, "delete customer", nil)
}
