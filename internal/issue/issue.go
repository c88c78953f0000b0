// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	HomeNotSetId Id = iota + 1
	CommandNotValidId
	AmbiguousCommandId
	InterpreterNotSetId
	MultiLineAliasId
	MissingAliasArgumentId
	SpawnFailedId
	ConfigLoadFailedId
	DirectorySetupFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown source rendered for the user.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a catalog entry: the help shown for one class of failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the Markdown help with the given glamour style
// ("dark", "light", "notty", "auto" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))

	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	homeNotSetIssue = &Issue{
		id: HomeNotSetId,
		mdMsg: `
# BS_HOME is not set

bs resolves every command below a single home directory. The home directory
must be set before any command can run.

## Things you can try
- Point ` + "`BS_HOME`" + ` at the directory that holds your command trees:
~~~
$ export BS_HOME="$HOME/bstools"
~~~
- Or set ` + "`home`" + ` in ` + "`~/.config/bs/config.cue`" + `:
~~~cue
home: "/home/me/bstools"
~~~`,
	}

	commandNotValidIssue = &Issue{
		id: CommandNotValidId,
		mdMsg: `
# The command you entered is not valid

None of the runner directories contains the path you typed.

## Things you can try
- Run ` + "`bs`" + ` with no arguments to see the top-level options
- Use ` + "`bs --list <prefix>`" + ` to see what exists below a prefix
- Check for typos: every argument is a file or directory name`,
	}

	ambiguousCommandIssue = &Issue{
		id: AmbiguousCommandId,
		mdMsg: `
# More than one command matches

Two or more runners contain a command at the same path. Commands must be unique
across ` + "`executables`, `python`, `commands` and `java`" + `.

## Things you can try
- Rename or remove one of the listed command files
- Run with ` + "`--verbose`" + ` to see which runners matched`,
	}

	interpreterNotSetIssue = &Issue{
		id: InterpreterNotSetId,
		mdMsg: `
# Mandatory environment variable does not exist

Python scripts need ` + "`BS_PYTHON`" + ` and Java archives need ` + "`BS_JAVA`" + `
to point at the executable used to run them.

## Things you can try
~~~
$ export BS_PYTHON=/usr/bin/python3
$ export BS_JAVA=/usr/bin/java
~~~
- Or add them to the ` + "`env`" + ` map in ` + "`~/.config/bs/config.cue`",
	}

	multiLineAliasIssue = &Issue{
		id: MultiLineAliasId,
		mdMsg: `
# Command file contains more than one line

Files under ` + "`commands/`" + ` are aliases and hold exactly one command line.

## Things you can try
- Join the lines into a single command
- Move multi-step logic into a script under ` + "`executables/`",
	}

	missingAliasArgumentIssue = &Issue{
		id: MissingAliasArgumentId,
		mdMsg: `
# Must provide argument to execute the command

The alias contains more ` + "`%s`" + ` tokens than the arguments you passed.
Each ` + "`%s`" + ` is replaced by one argument, in order.

## Things you can try
- Pass one argument per ` + "`%s`" + ` token
- Use ` + "`bs --dry-run ...`" + ` to see the command that would run`,
	}

	spawnFailedIssue = &Issue{
		id: SpawnFailedId,
		mdMsg: `
# Failed to launch process

The command was resolved but the operating system refused to start it.

## Common causes
- The file under ` + "`executables/`" + ` is not executable
- The script has no valid shebang line
- The interpreter path in ` + "`BS_PYTHON`/`BS_JAVA`" + ` does not exist

## Things you can try
~~~
$ chmod +x "$BS_HOME/executables/<command>"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Things you can try
- Check the CUE syntax of ` + "`~/.config/bs/config.cue`" + `
- Print the effective configuration:
~~~
$ bs --show-config
~~~`,
	}

	directorySetupFailedIssue = &Issue{
		id: DirectorySetupFailedId,
		mdMsg: `
# Failed to prepare the home directory

bs creates ` + "`data/`" + ` and one directory per runner below the home
directory on every start.

## Things you can try
- Check that you can write to the home directory
- Point ` + "`BS_HOME`" + ` at a directory you own`,
	}

	issues = map[Id]*Issue{
		homeNotSetIssue.Id():           homeNotSetIssue,
		commandNotValidIssue.Id():      commandNotValidIssue,
		ambiguousCommandIssue.Id():     ambiguousCommandIssue,
		interpreterNotSetIssue.Id():    interpreterNotSetIssue,
		multiLineAliasIssue.Id():       multiLineAliasIssue,
		missingAliasArgumentIssue.Id(): missingAliasArgumentIssue,
		spawnFailedIssue.Id():          spawnFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		directorySetupFailedIssue.Id(): directorySetupFailedIssue,
	}
)

// Values returns every catalog entry, ordered by Id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
