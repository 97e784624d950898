package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// ListTrainings fetches all trainings with the customer field as an
// opaque reference.
func ListTrainings(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Training, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/trainings", baseURL)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := doJSON(httpClient, req, "list trainings", &raw); err != nil {
		return nil, err
	}
	return decodeCollection[types.Training](raw, "trainings")
}

// ListTrainingsWithCustomer fetches trainings with the customer embedded
// as a full object. The calendar and statistics views use this form.
func ListTrainingsWithCustomer(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Training, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/gettrainings", baseURL)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := doJSON(httpClient, req, "list trainings with customer", &raw); err != nil {
		return nil, err
	}
	return decodeCollection[types.Training](raw, "trainings")
}

// CreateTraining posts a new training and returns the created resource.
func CreateTraining(ctx context.Context, httpClient *http.Client, baseURL string, form types.TrainingForm) (*types.Training, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/trainings", baseURL)
	req, err := newJSONRequest(ctx, http.MethodPost, url, form)
	if err != nil {
		return nil, err
	}
	var t types.Training
	if err := doJSON(httpClient, req, "create training", &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTraining deletes a training by resource URL or bare id.
func DeleteTraining(ctx context.Context, httpClient *http.Client, baseURL, urlOrID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := newJSONRequest(ctx, http.MethodDelete, mutationURL(baseURL, "trainings", urlOrID), nil)
	if err != nil {
		return err
	}
	return doJSON(httpClient, req, "delete training", nil)
}
