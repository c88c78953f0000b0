// SPDX-License-Identifier: MPL-2.0

// Command bs dispatches commands stored under a directory of runners.
package main

import cmd "github.com/bstools/bstools/cmd/bs"

func main() {
	cmd.Execute()
}
