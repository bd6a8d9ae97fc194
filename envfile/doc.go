// Package envfile parses, validates and re-serializes .env-style files that
// group variables into named blocks.
//
// # Grammar
//
// The format is line oriented. Each line is classified by its prefix, in this
// order:
//
//	#@ name [tag ...]   open a named block
//	##                  close the open block
//	# text              comment in the current scope
//	<blank>             separator, discarded unless [WithKeepEmpty] is set
//	KEY=value           variable assignment (split on the first '=')
//
// Lines outside any named block belong to the default block, which always
// exists, is always first, and whose name ("default") is reserved.
//
// Block names and tags match [a-z_][a-z0-9_]*. Variable keys match
// [A-Za-z_][A-Za-z0-9_]*. Values are kept verbatim.
//
// # Example
//
//	APP_ENV=dev
//
//	#@ database_block [local]
//	# primary connection
//	DB_HOST=localhost
//	DB_PORT=5432
//	##
//
// # Errors
//
// Every failure is an [*Error] with a [Kind]. Sentinels such as
// [ErrDuplicateBlock] match any error of the same kind under [errors.Is]:
//
//	doc, err := envfile.ParseString(src)
//	if errors.Is(err, envfile.ErrDuplicateVariable) {
//		...
//	}
//
// Parsing stops at the first error; no partial document is returned.
package envfile
