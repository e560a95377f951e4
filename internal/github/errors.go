package github

import (
	"errors"
	"net"
	"os"
	"syscall"

	gh "github.com/google/go-github/v57/github"

	"github.com/gnomegl/relslurp/internal/errs"
)

// translateErr maps go-github and transport failures onto stable codes so
// the retry executor can classify them. Anything unrecognized stays
// CodeUnknown and fails fast rather than looping silently.
func translateErr(err error, op string) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return errs.Wrapf(err, errs.CodeRateLimited, "%s: rate limited until %s", op, rateErr.Rate.Reset.Time)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return errs.Wrapf(err, errs.CodeRateLimited, "%s: secondary rate limit hit", op)
	}
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return errs.Wrapf(err, errs.FromHTTPStatus(ghErr.Response.StatusCode), "%s: github api error", op)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.Wrapf(err, errs.CodeUnavailable, "%s: request timed out", op)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return errs.Wrapf(err, errs.CodeUnavailable, "%s: dns failure", op)
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return errs.Wrapf(err, errs.CodeUnavailable, "%s: connection failure", op)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errs.Wrapf(err, errs.CodeUnavailable, "%s: network failure", op)
	}
	if errors.Is(err, os.ErrPermission) {
		return errs.Wrapf(err, errs.CodeUnknown, "%s: permission denied", op)
	}

	return errs.Wrapf(err, errs.CodeUnknown, "%s", op)
}
