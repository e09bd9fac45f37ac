package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/gaborage/go-sheets/config"
	"github.com/gaborage/go-sheets/logger"
)

// Client is the entry point of the library. It owns the authenticated
// session and the retry policy applied to every remote call. The
// session is injected at construction; there is no package-level
// client state.
type Client struct {
	api     remoteAPI
	retrier *Retrier
	log     logger.Logger
}

// New creates a Client from the given configuration. When a
// credentials file is configured it is used for authentication;
// otherwise ambient credential discovery applies. Extra client options
// (custom endpoint, injected HTTP client) are appended after the
// configured ones, so they win.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...option.ClientOption) (*Client, error) {
	var clientOpts []option.ClientOption
	if cfg.Credentials.File != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.Credentials.File))
	}
	clientOpts = append(clientOpts, opts...)

	sheetsSvc, err := gsheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{
		api:     &googleAPI{sheets: sheetsSvc, drive: driveSvc},
		retrier: NewRetrier(log, cfg.Retry.MaxRetries, cfg.Retry.Backoff),
		log:     log,
	}, nil
}

// Open resolves a workbook by title. An unresolvable title is a fatal
// error; the lookup call itself still runs under the retry policy.
func (c *Client) Open(ctx context.Context, name string) (*Workbook, error) {
	id, err := Call(c.retrier, func() (string, error) {
		return c.api.spreadsheetIDByTitle(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("workbook", name).Str("spreadsheet_id", id).Msg("Opened workbook")
	return &Workbook{client: c, id: id, name: name}, nil
}

// OpenByID returns a handle for an already-known spreadsheet ID. No
// remote call is made; the first operation on the workbook validates
// the ID.
func (c *Client) OpenByID(spreadsheetID string) *Workbook {
	return &Workbook{client: c, id: spreadsheetID}
}
