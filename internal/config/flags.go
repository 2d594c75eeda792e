package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-strict exit non-zero when the input argument is not valid JSON
//	-copy copy the token to the system clipboard as well as printing it
//	-log-level diagnostic log level for stderr (debug, info, warn, error, disabled)
//	-c/-config json file path with configs
//	-version print build metadata and exit
//
// Positional arguments left after flag parsing are captured in Config.Args;
// the first one is the JSON document to encode.
func ParseFlags() *Config {
	var strictExit bool
	var clipboard bool
	var logLevel string
	var jsonConfigPath string
	var version bool

	flag.BoolVar(&strictExit, "strict", false, "Exit non-zero when the input is not valid JSON")
	flag.BoolVar(&clipboard, "copy", false, "Copy the token to the system clipboard")
	flag.StringVar(&logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error, disabled)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&version, "version", false, "Print build metadata and exit")

	args := os.Args[1:]

	// A top-level negative number ("-5") is a valid JSON document, but the
	// flag parser would reject it as an undefined flag. Everything from the
	// first such argument on is positional.
	var tail []string
	for i, arg := range args {
		if len(arg) >= 2 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			tail = args[i:]
			args = args[:i]
			break
		}
	}

	_ = flag.CommandLine.Parse(args)

	return &Config{
		App: App{
			StrictExit: strictExit,
			Clipboard:  clipboard,
			LogLevel:   logLevel,
		},
		JSONFilePath: jsonConfigPath,
		Version:      version,
		Args:         append(flag.Args(), tail...),
	}
}
