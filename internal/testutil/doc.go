// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Environment helpers (MustSetenv, MustUnsetenv, SetHomeDir) touch the real
// process and must not be used from parallel tests. Tree helpers (Tree,
// NewMemTree) build runner directory layouts on an afero filesystem and are
// safe to use in parallel.
package testutil
