package envfile

// Markers recognised at the start of a line.
const (
	BlockOpenMarker  = "#@"
	BlockCloseMarker = "##"
	CommentMarker    = "#"
	Separator        = "="
	TagsOpen         = "["
	TagsClose        = "]"
)

// DefaultBlockName is the reserved name of the implicit top-level block.
const DefaultBlockName = "default"

// EncryptedTag marks a block whose body is meant to be stored encrypted.
// The tag is reserved; envmn does not encrypt or decrypt anything.
const EncryptedTag = "__encrypted__"

// Variable is a single key/value assignment.
//
// Two variables are the same variable when their keys match, regardless of
// value.
type Variable struct {
	Key   string
	Value string
}

// NewVariable returns a Variable with the given key and value.
func NewVariable(key, value string) Variable {
	return Variable{Key: key, Value: value}
}

// Equal reports whether v and o have the same key.
func (v Variable) Equal(o Variable) bool { return v.Key == o.Key }

// String returns the variable in key=value form.
func (v Variable) String() string { return v.Key + Separator + v.Value }

// LineKind discriminates the variants of [Line].
type LineKind int

const (
	LineComment  LineKind = iota // comment
	LineVariable                 // variable
	LineEmpty                    // empty
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineComment:
		return "comment"
	case LineVariable:
		return "variable"
	case LineEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Line is one entry of a block: a comment, a variable, or an empty separator.
type Line struct {
	kind     LineKind
	text     string
	variable Variable
}

// CommentLine returns a comment line with the given text.
// The text excludes the comment marker.
func CommentLine(text string) Line {
	return Line{kind: LineComment, text: text}
}

// VariableLine returns a line holding v.
func VariableLine(v Variable) Line {
	return Line{kind: LineVariable, variable: v}
}

// EmptyLine returns a blank separator line.
func EmptyLine() Line {
	return Line{kind: LineEmpty}
}

// Kind returns the variant of the line.
func (l Line) Kind() LineKind { return l.kind }

// Text returns the text of a comment line, or "" for other kinds.
func (l Line) Text() string { return l.text }

// Variable returns the variable of a variable line.
// The boolean is false for other kinds.
func (l Line) Variable() (Variable, bool) {
	return l.variable, l.kind == LineVariable
}

// Equal reports whether two lines are the same line.
//
// Variable lines are equal when their keys are equal. Comment and empty lines
// are never equal to any line, so a block may repeat them freely.
func (l Line) Equal(o Line) bool {
	switch l.kind {
	case LineVariable:
		return o.kind == LineVariable && l.variable.Equal(o.variable)
	case LineComment, LineEmpty:
		return false
	default:
		return false
	}
}

// String returns the line as it appears in a formatted document.
func (l Line) String() string {
	switch l.kind {
	case LineComment:
		if l.text == "" {
			return CommentMarker
		}

		return CommentMarker + " " + l.text
	case LineVariable:
		return l.variable.String()
	case LineEmpty:
		return ""
	default:
		return ""
	}
}
