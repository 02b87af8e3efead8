// SPDX-License-Identifier: EPL-2.0

// Package scan enumerates regular files under a directory root.
//
// The walk is depth-first, lexically ordered, and strictly sequential. It
// never follows symbolic links and it fails fast: the first unreadable
// entry aborts the whole walk. There is no skip-and-continue mode.
package scan
