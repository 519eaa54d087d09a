// Package logger provides structured logging for keepsake CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with coloured prefixes.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways, WarnfUser and Fatalf produce output.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d destinations", len(list.Options))
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions.
package logger
