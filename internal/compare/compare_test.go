package compare

import (
	"envtidy/internal/envfile"
	"reflect"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func mustParse(t *testing.T, name, content string) *envfile.File {
	t.Helper()
	f, err := envfile.Parse(name, strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFiles(t *testing.T) {
	a := mustParse(t, "a.env", "X=1\nY=2\n")
	b := mustParse(t, "b.env", "Y=3\nZ=4\n")

	r := Files(a, b)

	if !reflect.DeepEqual(r.OnlyInFirst, []string{"X"}) {
		t.Errorf("OnlyInFirst = %v, want [X]", r.OnlyInFirst)
	}
	if !reflect.DeepEqual(r.OnlyInSecond, []string{"Z"}) {
		t.Errorf("OnlyInSecond = %v, want [Z]", r.OnlyInSecond)
	}
	want := []Difference{{Key: "Y", First: "2", Second: "3"}}
	if !reflect.DeepEqual(r.Differing, want) {
		t.Errorf("Differing = %+v, want %+v", r.Differing, want)
	}
	if r.Identical() {
		t.Error("Identical() = true")
	}
}

func TestFilesSelf(t *testing.T) {
	a := mustParse(t, "a.env", "# c\nA=1\nB=\nC=x=y\n")
	r := Files(a, a)
	if !r.Identical() {
		t.Errorf("comparing a file with itself = %+v", r)
	}
}

func TestFilesSortedAndExact(t *testing.T) {
	a := mustParse(t, "a.env", "b=1\nB=1\nCASE=Value\nSAME=v\nq=1\n")
	b := mustParse(t, "b.env", "CASE=value\nSAME= v \nz=1\nA=1\n")

	r := Files(a, b)

	if !reflect.DeepEqual(r.OnlyInFirst, []string{"B", "b", "q"}) {
		t.Errorf("OnlyInFirst = %v", r.OnlyInFirst)
	}
	if !reflect.DeepEqual(r.OnlyInSecond, []string{"A", "z"}) {
		t.Errorf("OnlyInSecond = %v", r.OnlyInSecond)
	}
	if len(r.Differing) != 1 || r.Differing[0].Key != "CASE" {
		t.Errorf("Differing = %+v, want only CASE", r.Differing)
	}
	want := Difference{Key: "CASE", First: "Value", Second: "value"}
	if len(r.Differing) == 1 && r.Differing[0] != want {
		t.Errorf("Differing[0] = %+v, want %+v", r.Differing[0], want)
	}
}

func TestFilesEmptyKey(t *testing.T) {
	a := mustParse(t, "a.env", "=emptykey\nA=1\n")
	b := mustParse(t, "b.env", "A=1\n=other\n")

	r := Files(a, b)

	want := []Difference{{Key: "", First: "emptykey", Second: "other"}}
	if !reflect.DeepEqual(r.Differing, want) {
		t.Errorf("Differing = %+v, want %+v", r.Differing, want)
	}
	if len(r.OnlyInFirst) != 0 || len(r.OnlyInSecond) != 0 {
		t.Errorf("unexpected unique keys: %v %v", r.OnlyInFirst, r.OnlyInSecond)
	}
}

func TestDifferenceEdits(t *testing.T) {
	d := Difference{Key: "HOST", First: "db.local", Second: "db.prod"}
	var deleted, inserted, equal string
	for _, e := range d.Edits() {
		switch e.Type {
		case diffmatchpatch.DiffDelete:
			deleted += e.Text
		case diffmatchpatch.DiffInsert:
			inserted += e.Text
		case diffmatchpatch.DiffEqual:
			equal += e.Text
		}
	}
	if !strings.Contains(equal, "db.") {
		t.Errorf("common prefix missing from equal text %q", equal)
	}
	if deleted == "" || inserted == "" {
		t.Errorf("deleted=%q inserted=%q, want both non-empty", deleted, inserted)
	}
}
