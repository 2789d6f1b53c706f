package render

import "testing"

func TestPyString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"index", "'index'"},
		{"it's", `'it\'s'`},
		{`a\b`, `'a\\b'`},
		{"line1\nline2", `'line1\nline2'`},
		{"tab\there", `'tab\there'`},
	}
	for _, tc := range cases {
		if got := pyString(tc.in); got != tc.want {
			t.Errorf("pyString(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPyBool(t *testing.T) {
	t.Parallel()

	if got := pyBool(true); got != "True" {
		t.Errorf("pyBool(true): got %s", got)
	}
	if got := pyBool(false); got != "False" {
		t.Errorf("pyBool(false): got %s", got)
	}
}

func TestPyStringList(t *testing.T) {
	t.Parallel()

	if got := pyStringList(nil); got != "[]" {
		t.Errorf("empty list: got %s", got)
	}
	if got := pyStringList([]string{"_build"}); got != "['_build']" {
		t.Errorf("single element: got %s", got)
	}
	if got := pyStringList([]string{"_themes", "_static"}); got != "['_themes', '_static']" {
		t.Errorf("two elements: got %s", got)
	}
}

func TestPyDictSortedKeys(t *testing.T) {
	t.Parallel()

	if got := pyDict(nil); got != "{}" {
		t.Errorf("empty dict: got %s", got)
	}

	got := pyDict(map[string]string{"pointsize": "10pt", "papersize": "a4paper"})
	want := "{\n    'papersize': 'a4paper',\n    'pointsize': '10pt',\n}"
	if got != want {
		t.Errorf("pyDict: got %s, want %s", got, want)
	}
}
