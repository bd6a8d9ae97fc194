// Package engine executes one operation over a parsed [envfile.Document].
//
// An [Engine] holds the document together with the text it was parsed from,
// so that formatting can be checked or diffed against the original input.
// [Engine.Run] dispatches a [Request]:
//
//   - [OpLint] validates only; the document already parsed, so it succeeds.
//   - [OpFormat] writes the canonical form, a diff, or checks formatting.
//   - [OpList] enumerates blocks as text, JSON or YAML, optionally filtered
//     by an expression evaluated against each block.
//   - [OpPick] moves a block after all others and writes the result.
//
// Example:
//
//	eng, err := engine.Load(".env", src)
//	if err != nil {
//		return err
//	}
//
//	return eng.Run(ctx, os.Stdout, engine.Request{Op: engine.OpPick, Block: "api"})
package engine
