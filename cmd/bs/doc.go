// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the bs command line: flag parsing, configuration
// loading, logging setup and the console rendering of dispatch outcomes.
package cmd
