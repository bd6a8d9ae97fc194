// Package cmd implements the envmn subcommands.
//
// Every command that reads a document resolves its input the same way:
// piped standard input first, then the file argument, then .env in the
// working directory. Commands that rewrite the document (format, pick)
// write back to the file they read, holding an advisory lock for the
// duration of the write, or to standard output when the input was piped.
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the native configuration file.
var ConfigIdentifier = "config"
