// SPDX-License-Identifier: MPL-2.0

// Package execute wires configuration, discovery and the dispatcher into the
// single call the CLI makes per invocation. It decides between running a
// command and listing options, and leaves all console output to the caller.
package execute
