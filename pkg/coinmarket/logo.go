package coinmarket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/veiloq/coinmarket/pkg/market"
)

// logoSizes is the fixed set of pixel sizes the image endpoint serves.
var logoSizes = map[int]bool{16: true, 32: true, 64: true, 128: true, 200: true}

// DownloadLogo saves the PNG logo of a currency, identified by symbol or
// slug, to path. Size must be one of 16, 32, 64, 128 or 200 pixels; an
// unsupported size fails with ErrInvalidArgument before any network I/O.
// Some currencies forbid particular sizes upstream (HTTP 403), which also
// surfaces as ErrInvalidArgument.
func (c *Client) DownloadLogo(ctx context.Context, name string, size int, path string) error {
	if !logoSizes[size] {
		return fmt.Errorf("%w: unsupported logo size %d (valid sizes: 16, 32, 64, 128, 200)",
			market.ErrInvalidArgument, size)
	}

	id, err := c.idForCurrency(ctx, name)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%dx%d/%d.png", c.opts.ImageBaseURL, size, size, id)
	resp, err := c.transport.Fetch(ctx, url)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return fmt.Errorf("%w: %s", market.ErrTimeout, url)
		}
		return fmt.Errorf("fetching %s: %w", url, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return fmt.Errorf("%w: size %dx%d is not provided for currency %q",
			market.ErrInvalidArgument, size, size, name)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", market.ErrNotFound, url)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", market.ErrRateLimited, url)
	default:
		return &market.HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
		return fmt.Errorf("saving logo to %s: %w", path, err)
	}
	return nil
}
