// SPDX-License-Identifier: MPL-2.0

package types

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/attestify/kernel/pkg/errdefs"
)

// RepositoryLink is a validated URL pointing at the repository that holds a
// procedure specification.
//
// Link inputs without a scheme (for example "github.com/nape/processes" or
// "localhost") are accepted; the builder's default scheme is prepended
// before validation.
type RepositoryLink struct {
	url URL
}

// URL returns the underlying validated URL.
func (r RepositoryLink) URL() URL { return r.url }

// String returns the full repository link, including the applied scheme.
func (r RepositoryLink) String() string { return r.url.Value() }

// RepositoryLinkBuilder assembles and validates a RepositoryLink. All three
// inputs are required: the allowed schemes, a default scheme drawn from that
// list, and the link itself.
type RepositoryLinkBuilder struct {
	allowedSchemes []string
	defaultScheme  string
	link           string
	hasDefault     bool
	hasLink        bool
}

// NewRepositoryLink returns an empty RepositoryLinkBuilder.
func NewRepositoryLink() *RepositoryLinkBuilder {
	return &RepositoryLinkBuilder{}
}

// AllowedSchemes sets the list of schemes the link may use.
func (b *RepositoryLinkBuilder) AllowedSchemes(schemes ...string) *RepositoryLinkBuilder {
	b.allowedSchemes = schemes
	return b
}

// DefaultScheme sets the scheme applied to links that do not carry one.
func (b *RepositoryLinkBuilder) DefaultScheme(scheme string) *RepositoryLinkBuilder {
	b.defaultScheme = scheme
	b.hasDefault = true
	return b
}

// Link sets the repository link to validate.
func (b *RepositoryLinkBuilder) Link(link string) *RepositoryLinkBuilder {
	b.link = link
	b.hasLink = true
	return b
}

// Build verifies the builder inputs and returns the RepositoryLink.
func (b *RepositoryLinkBuilder) Build() (RepositoryLink, error) {
	if err := b.verifyAllowedSchemes(); err != nil {
		return RepositoryLink{}, err
	}
	if err := b.verifyDefaultScheme(); err != nil {
		return RepositoryLink{}, err
	}
	link, err := b.verifyLink()
	if err != nil {
		return RepositoryLink{}, err
	}

	parsed, err := ParseURL(link)
	if err != nil {
		return RepositoryLink{}, errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The provided repository link [%s] is malformed. %s", link, err))
	}
	return RepositoryLink{url: parsed}, nil
}

func (b *RepositoryLinkBuilder) verifyAllowedSchemes() error {
	if len(b.allowedSchemes) == 0 {
		return errdefs.ForSystem(errdefs.InvalidInput,
			"No allowed schemes were provided, please provide at least one allowed scheme.")
	}
	return nil
}

func (b *RepositoryLinkBuilder) verifyDefaultScheme() error {
	if !b.hasDefault {
		return errdefs.ForUser(errdefs.InvalidInput,
			"A default scheme was not provided. Please provide a default scheme.")
	}
	if strings.TrimSpace(b.defaultScheme) == "" {
		return errdefs.ForSystem(errdefs.InvalidInput,
			"The provided default scheme is empty or all whitespace. Please provide a non-empty default scheme.")
	}
	if !slices.Contains(b.allowedSchemes, b.defaultScheme) {
		return errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The provided default scheme '%s' is not in the list of allowed schemes: %q. "+
				"Either provide a default scheme that is in the list of allowed schemes, or update the list of "+
				"allowed schemes to include the default scheme.",
				b.defaultScheme, b.allowedSchemes))
	}
	return nil
}

func (b *RepositoryLinkBuilder) verifyLink() (string, error) {
	if !b.hasLink {
		return "", errdefs.ForSystem(errdefs.InvalidInput,
			"A repository link was not provided. Please provide a repository link.")
	}
	if strings.TrimSpace(b.link) == "" {
		return "", errdefs.ForSystem(errdefs.InvalidInput,
			"The provided repository link is empty or all whitespace. Please provide a non-empty repository link.")
	}
	if err := b.verifyLinkNotMalformed(b.link); err != nil {
		return "", err
	}

	link := b.applyDefaultScheme(b.link)

	if scheme := schemeOf(link); !slices.Contains(b.allowedSchemes, scheme) {
		return "", errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The url scheme '%s' is not allowed. Allowed schemes are %q and the default scheme is '%s'.",
				scheme, b.allowedSchemes, b.defaultScheme))
	}
	return link, nil
}

// A link starting with an alphanumeric character is treated as a bare host
// and receives the default scheme. Anything else must be a proper
// [scheme]://[host] form with a non-empty remainder.
func (b *RepositoryLinkBuilder) verifyLinkNotMalformed(link string) error {
	r := []rune(link)[0]
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return nil
	}
	parts := strings.SplitN(link, "://", 2)
	if len(parts) != 2 || parts[1] == "" || strings.Contains(parts[1], "://") {
		return errdefs.ForSystem(errdefs.InvalidInput,
			fmt.Sprintf("The repository link [%s] is malformed. It must either start with a scheme separator '://' "+
				"or be formatted as [scheme]://[host] per the RFC 3986 specification.", link))
	}
	return nil
}

func (b *RepositoryLinkBuilder) applyDefaultScheme(link string) string {
	before, after, found := strings.Cut(link, "://")
	switch {
	case !found:
		return b.defaultScheme + "://" + link
	case before == "":
		return b.defaultScheme + "://" + after
	default:
		return link
	}
}

func schemeOf(link string) string {
	scheme, _, _ := strings.Cut(link, "://")
	return scheme
}
