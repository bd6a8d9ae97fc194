package envfile

import (
	"errors"
	"slices"
	"testing"
)

func TestBlock_AddVariable(t *testing.T) {
	b := NewBlock("db")

	if err := b.AddVariable(NewVariable("HOST", "localhost")); err != nil {
		t.Fatal(err)
	}

	err := b.AddVariable(NewVariable("HOST", "remote"))
	if !errors.Is(err, ErrDuplicateVariable) {
		t.Fatalf("duplicate AddVariable = %v, want DuplicateVariable", err)
	}

	if v, _ := b.Variable("HOST"); v.Value != "localhost" {
		t.Errorf("HOST = %q, first value must be kept", v.Value)
	}

	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBlock_CommentsAndEmptyRepeat(t *testing.T) {
	b := NewBlock("db")
	b.AddComment("note")
	b.AddComment("note")
	b.AddEmpty()
	b.AddEmpty()

	if b.Len() != 4 || b.Comments() != 2 {
		t.Errorf("Len() = %d, Comments() = %d; want 4, 2", b.Len(), b.Comments())
	}

	if len(b.Variables()) != 0 {
		t.Errorf("Variables() = %v, want none", b.Variables())
	}
}

func TestBlock_UpdateRemoveClear(t *testing.T) {
	b := NewBlock("db")
	for _, kv := range [][2]string{{"A", "1"}, {"B", "2"}, {"C", "3"}} {
		if err := b.AddVariable(NewVariable(kv[0], kv[1])); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.UpdateVariable(NewVariable("B", "20")); err != nil {
		t.Fatal(err)
	}

	if v, _ := b.Variable("B"); v.Value != "20" {
		t.Errorf("B = %q after update, want 20", v.Value)
	}

	if err := b.UpdateVariable(NewVariable("Z", "0")); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("UpdateVariable(missing) = %v, want VariableNotFound", err)
	}

	if err := b.RemoveVariable("A"); err != nil {
		t.Fatal(err)
	}

	// Positions after the removed line must still resolve.
	if v, ok := b.Variable("C"); !ok || v.Value != "3" {
		t.Errorf("C = %+v, %v after remove", v, ok)
	}

	keys := make([]string, 0, 2)
	for _, v := range b.Variables() {
		keys = append(keys, v.Key)
	}

	if !slices.Equal(keys, []string{"B", "C"}) {
		t.Errorf("keys = %v, want [B C]", keys)
	}

	if err := b.RemoveVariable("A"); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("second RemoveVariable = %v, want VariableNotFound", err)
	}

	// Removed keys may be added again.
	if err := b.AddVariable(NewVariable("A", "new")); err != nil {
		t.Errorf("re-adding removed key: %v", err)
	}

	b.Clear()

	if !b.IsEmpty() {
		t.Errorf("block not empty after Clear")
	}

	if _, ok := b.Variable("B"); ok {
		t.Errorf("B still present after Clear")
	}
}

func TestBlock_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b *Block
		want bool
	}{
		{name: "same name", a: NewBlock("x"), b: NewBlock("x"), want: true},
		{name: "different name", a: NewBlock("x"), b: NewBlock("y"), want: false},
		{name: "tag order ignored", a: NewBlock("x", "p", "q"), b: NewBlock("x", "q", "p"), want: true},
		{name: "different tags", a: NewBlock("x", "p"), b: NewBlock("x", "q"), want: false},
		{name: "missing tags", a: NewBlock("x", "p"), b: NewBlock("x"), want: false},
		{name: "nil and block", a: nil, b: NewBlock("x"), want: false},
		{name: "both nil", a: nil, b: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlock_Tags(t *testing.T) {
	b := NewBlock("x", "prod", "eu", "prod")

	if got := b.Tags(); !slices.Equal(got, []string{"prod", "eu"}) {
		t.Errorf("Tags() = %v, want duplicates dropped", got)
	}

	if !b.HasTag("eu") || b.HasTag("us") {
		t.Errorf("HasTag mismatch for %v", b.Tags())
	}

	tags := b.Tags()
	tags[0] = "changed"

	if b.Tags()[0] != "prod" {
		t.Errorf("Tags() must return a copy")
	}
}

func TestLine_Equal(t *testing.T) {
	v1 := VariableLine(NewVariable("K", "1"))
	v2 := VariableLine(NewVariable("K", "2"))
	v3 := VariableLine(NewVariable("J", "1"))
	c := CommentLine("K")

	if !v1.Equal(v2) {
		t.Error("variable lines with equal keys should be equal")
	}

	if v1.Equal(v3) || v1.Equal(c) || c.Equal(c) || EmptyLine().Equal(EmptyLine()) {
		t.Error("unexpected line equality")
	}
}
