// SPDX-License-Identifier: MPL-2.0

// Package runtime turns a resolved command into a process invocation and
// launches it.
//
// Each runner strategy marshals arguments differently:
//   - executable: the command file is the program, arguments pass through
//   - interpreted: the interpreter from the environment runs the file
//   - alias: the file holds a one-line template with %s placeholders
//   - archive: the launcher from the environment runs the file after a flag
//
// BuildInvocation is pure apart from reading alias files and environment
// lookups, so it also backs dry runs. Dispatch adds the spawn.
package runtime
