// SPDX-License-Identifier: MPL-2.0

// attestid mints and inspects ULID entity identities.
package main

func main() {
	Execute()
}
