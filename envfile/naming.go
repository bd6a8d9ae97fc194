package envfile

// TokenKind identifies which kind of identifier is being validated.
// It is reported in naming errors.
type TokenKind int

const (
	TokenBlock    TokenKind = iota // block
	TokenVariable                  // variable
	TokenTag                       // tag
)

// String returns the name used for the token kind in error messages.
func (t TokenKind) String() string {
	switch t {
	case TokenBlock:
		return "block"
	case TokenVariable:
		return "variable"
	case TokenTag:
		return "tag"
	default:
		return "token"
	}
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isBlockStart(r rune) bool { return isLower(r) || r == '_' }
func isBlockRest(r rune) bool  { return isBlockStart(r) || isDigit(r) }

func isVariableStart(r rune) bool { return isLower(r) || isUpper(r) || r == '_' }
func isVariableRest(r rune) bool  { return isVariableStart(r) || isDigit(r) }

// ValidateBlockName reports whether name is a legal block name:
// a lowercase ASCII letter or underscore followed by any number of lowercase
// ASCII letters, digits, or underscores.
//
// The line argument is the 0-based index of the source line and is only used
// for error reporting.
func ValidateBlockName(line int, name string) error {
	return validateName(line, name, TokenBlock, isBlockStart, isBlockRest)
}

// ValidateVariableName reports whether name is a legal variable key:
// an ASCII letter or underscore followed by any number of ASCII letters,
// digits, or underscores.
func ValidateVariableName(line int, name string) error {
	return validateName(line, name, TokenVariable, isVariableStart, isVariableRest)
}

// ValidateTag reports whether tag is a legal block tag.
// Tags follow the same rules as block names.
func ValidateTag(line int, tag string) error {
	return validateName(line, tag, TokenTag, isBlockStart, isBlockRest)
}

func validateName(
	line int,
	name string,
	token TokenKind,
	first, rest func(rune) bool,
) error {
	if name == "" {
		return nameEmpty(line, token)
	}

	for i, r := range name {
		if i == 0 {
			if !first(r) {
				return startsWithInvalid(line, token, r)
			}

			continue
		}

		if !rest(r) {
			return containsInvalid(line, token, r)
		}
	}

	return nil
}
