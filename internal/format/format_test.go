package format

import (
	"envtidy/internal/envfile"
	"envtidy/internal/testutils"
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, content string) *envfile.File {
	t.Helper()
	f, err := envfile.Parse("test.env", strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "prefix groups",
			input:    "DB_HOST=x\nDB_PORT=y\nAPP_NAME=z\n",
			expected: "APP_NAME=z\n\nDB_HOST=x\nDB_PORT=y",
		},
		{
			name:     "comments follow their entry",
			input:    "# port\nDB_PORT=5432\n# host\n# second line\nDB_HOST=localhost\n",
			expected: "# host\n# second line\nDB_HOST=localhost\n# port\nDB_PORT=5432",
		},
		{
			name:     "detached comment dropped",
			input:    "# stray\n\nKEY=v\n",
			expected: "KEY=v",
		},
		{
			name:     "keys without underscore form their own groups",
			input:    "PORT=1\nHOST=2\nHOST_NAME=3\n",
			expected: "HOST=2\nHOST_NAME=3\n\nPORT=1",
		},
		{
			name:     "comment before a group separator",
			input:    "A_ONE=1\n# about b\nB_ONE=2\n",
			expected: "A_ONE=1\n\n# about b\nB_ONE=2",
		},
		{
			name:     "values kept verbatim",
			input:    "URL = http://h/?a=b \nQUOTED='x y'\nEMPTY=\n",
			expected: "EMPTY=\n\nQUOTED='x y'\n\nURL=http://h/?a=b",
		},
		{
			name:     "empty key sorts first in its own group",
			input:    "APP_NAME=z\n=emptykey\n",
			expected: "=emptykey\n\nAPP_NAME=z",
		},
		{
			name:     "empty file",
			input:    "\n# only a comment\n",
			expected: "",
		},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := File(mustParse(t, tt.input))
		cases = append(cases, testutils.Check(tt.name, tt.input, tt.expected, actual))
	}
	testutils.PrintTestTable(t, cases)
}

func TestGroups(t *testing.T) {
	groups := Groups(mustParse(t, "DB_PORT=1\nAPP_NAME=2\nDB_HOST=3\nPORT=4\n"))

	var prefixes []string
	var sizes []int
	for _, g := range groups {
		prefixes = append(prefixes, g.Prefix)
		sizes = append(sizes, len(g.Entries))
	}
	if !reflect.DeepEqual(prefixes, []string{"APP", "DB", "PORT"}) {
		t.Errorf("prefixes = %v", prefixes)
	}
	if !reflect.DeepEqual(sizes, []int{1, 2, 1}) {
		t.Errorf("group sizes = %v", sizes)
	}
	if groups[1].Entries[0].Key != "DB_HOST" {
		t.Errorf("entries inside a group are not sorted: %+v", groups[1].Entries)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"# c\nB_X=1\nA=2\n\n# gone\n\nC_Y=a=b\nC_Z= spaced \n",
		"K=1\nK=2\nnoise\n=kept\n_HIDDEN=h\n",
		"",
	}

	for _, input := range inputs {
		original := mustParse(t, input)
		reparsed := mustParse(t, File(original))

		if !reflect.DeepEqual(original.SortedKeys(), reparsed.SortedKeys()) {
			t.Errorf("keys changed: %v -> %v", original.SortedKeys(), reparsed.SortedKeys())
			continue
		}
		for _, key := range original.SortedKeys() {
			if original.Value(key) != reparsed.Value(key) {
				t.Errorf("%s: %q -> %q", key, original.Value(key), reparsed.Value(key))
			}
		}
	}
}
