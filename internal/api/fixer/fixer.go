package fixer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/internal/service"
	"resty.dev/v3"
)

// DefaultTimeout bounds a single rates request.
const DefaultTimeout = 10 * time.Second

type fixer struct {
	httpClient *resty.Client
}

var _ service.RatesFetcher = (*fixer)(nil)

// Options represents input options for new instance of fixer api.
type Options struct {
	APIURL    string
	AccessKey string
	Timeout   time.Duration
}

// New creates a new instance of fixer api.
func New(opts Options) *fixer {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(opts.APIURL).
		SetTimeout(timeout).
		SetQueryParam("access_key", opts.AccessKey)

	return &fixer{
		httpClient: httpClient,
	}
}

func (f *fixer) FetchRates(ctx context.Context) (*models.RateResponse, error) {
	var result latestResponse

	response, err := f.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/latest")
	if err != nil {
		return nil, fmt.Errorf("send fetch rates request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("could not fetch rates(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}

	output := &models.RateResponse{
		Success:   result.Success,
		Timestamp: result.Timestamp,
		Base:      result.Base,
		Date:      result.Date,
		Rates:     result.Rates,
	}
	if result.Error != nil {
		output.Error = &models.RateError{
			Code: result.Error.Code,
			Type: result.Error.Type,
			Info: result.Error.Info,
		}
	}

	return output, nil
}

// Close releases idle connections of the underlying http client.
func (f *fixer) Close() error {
	return f.httpClient.Close()
}
