package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Print decorated log lines to the console and files"
	MsgPrintShort      = "Print one line through the configured logger"
	MsgConfigShort     = "Show the effective layout"
	MsgItemsShort      = "List the items a line can be made of"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgItemsHeading  = "Log items"
	MsgVersionFormat = "oaklog version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Layout file (default is the first oaklog/oaklog.{toml,yaml} in the XDG config dirs)"
	MsgFlagSeverity  = "Severity label of the line"
	MsgFlagItems     = "Comma separated items, e.g. time,severity,text"
	MsgFlagColor     = "Background color of decorations: #rrggbb, r,g,b or a palette name"
	MsgFlagNoNewline = "Do not end the line with a newline"
	MsgFlagFile      = "Also append the line to this file"
	MsgFlagFormat    = "Output format: toml or yaml"
	MsgFlagWrite     = "Write the layout to the default config path instead of stdout"
)

// Long messages
const (
	MsgRootLong = `oaklog prints lines made of an ordered list of items: the text itself,
the severity, the wall clock, the time since start, the call site and the
thread id. Each line goes to every configured sink, with optional background
colors on terminals.

Layouts are read from TOML or YAML files and OAKLOG_* environment variables.`

	MsgPrintLong = `Print joins its arguments with spaces and prints them once through the
logger described by the layout. Flags override the layout.`

	MsgPrintExample = `  oaklog print "disk almost full"
  oaklog print --items time,severity,text --severity WARN "disk almost full"
  oaklog print --color bright-red --file /tmp/app.log boom`

	MsgConfigLong = `Config prints the layout that print would use, after merging the built-in
defaults, the layout file and the environment.`

	MsgConfigExample = `  oaklog config                  # TOML to stdout
  oaklog config --format yaml    # YAML to stdout
  oaklog config -w               # Write to the default config path`
)
