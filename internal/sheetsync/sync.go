// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package sheetsync pushes roster rows to the spreadsheet bridge service
// so the operations sheet stays in step with local status updates. The
// push is a best-effort side channel: callers register the client as a
// roster.Syncer and treat failures as warnings.
package sheetsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skylark/droneops/internal/httputil"
	"github.com/skylark/droneops/pkg/types"
)

const (
	pilotWorksheet = "pilot-roster"

	defaultTimeout = 15 * time.Second
)

// Client pushes worksheet replacements to the sheet bridge.
type Client struct {
	cfg    types.SheetSyncConfig
	token  string
	client *http.Client
}

// NewClient builds a sheet-bridge client. token is the bearer token from
// the secrets directory; it may be empty when the bridge runs unsecured.
func NewClient(cfg types.SheetSyncConfig, token string) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:    cfg,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Name identifies the bridge in sync warnings.
func (c *Client) Name() string { return "sheet bridge" }

// SyncPilots replaces the pilot worksheet with the given rows. It
// implements roster.Syncer.
func (c *Client) SyncPilots(ctx context.Context, pilots []*types.Pilot) error {
	return c.putWorksheet(ctx, pilotWorksheet, pilots)
}

func (c *Client) putWorksheet(ctx context.Context, worksheet string, rows any) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s rows: %w", worksheet, err)
	}

	url := fmt.Sprintf("%s/spreadsheets/%s/worksheets/%s",
		c.cfg.Endpoint, c.cfg.Spreadsheet, worksheet)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", worksheet, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("pushing %s: %w", worksheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pushing %s: bridge returned %s: %s",
			worksheet, resp.Status, bytes.TrimSpace(snippet))
	}
	return nil
}
