// SPDX-License-Identifier: MPL-2.0

package types

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/attestify/kernel/pkg/errdefs"
)

// URL is a validated absolute URL. It keeps the original string together
// with its parsed components.
type URL struct {
	value  string
	parsed *url.URL
}

// ParseURL validates raw as an absolute URL (a scheme and a host are
// required) and returns the URL value.
func ParseURL(raw string) (URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return URL{}, errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The provided URL [%s] is malformed. %s", raw, err))
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return URL{}, errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The provided URL [%s] is malformed. It must be an absolute URL with a scheme and a host.", raw))
	}
	return URL{value: raw, parsed: parsed}, nil
}

// Value returns the original URL string.
func (u URL) Value() string { return u.value }

// String returns the original URL string.
func (u URL) String() string { return u.value }

// Scheme returns the URL scheme.
func (u URL) Scheme() string { return u.parsed.Scheme }

// Host returns the host without any port.
func (u URL) Host() string { return u.parsed.Hostname() }

// Port returns the port, or 0 when none is present.
func (u URL) Port() int {
	p := u.parsed.Port()
	if p == "" {
		return 0
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0
	}
	return n
}

// Path returns the URL path.
func (u URL) Path() string { return u.parsed.Path }

// QueryString returns the raw query string, without the leading '?'.
func (u URL) QueryString() string { return u.parsed.RawQuery }

// Queries returns the parsed query parameters.
func (u URL) Queries() url.Values { return u.parsed.Query() }

// Fragment returns the URL fragment, without the leading '#'.
func (u URL) Fragment() string { return u.parsed.Fragment }
