// SPDX-License-Identifier: MPL-2.0

// Package types defines the validated value objects shared by the kernel:
// file names, URLs, repository links and UTC timestamps. Each value is
// immutable once constructed; construction validates the input and returns
// a classified errdefs.Error on rejection.
//
// This package is a near-leaf dependency: it imports only the standard
// library and pkg/errdefs. Domain packages import it; it never imports them.
package types
