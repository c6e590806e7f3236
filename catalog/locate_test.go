package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

const redContents = `{"colors": [{"idiom": "universal", "color": {"components": {"red": "1.000", "green": "0.000", "blue": "0.000", "alpha": "1.000"}}}]}`

const blueContents = `{"colors": [{"idiom": "universal", "color": {"components": {"red": "0.000", "green": "0.000", "blue": "1.000", "alpha": "1.000"}}}]}`

func testCatalog() fstest.MapFS {
	return fstest.MapFS{
		"Contents.json":                             {Data: []byte(`{"info": {"version": 1}}`)},
		"Red.colorset/Contents.json":                {Data: []byte(redContents)},
		"brand/Contents.json":                       {Data: []byte(`{"properties": {"provides-namespace": false}}`)},
		"brand/accents/Blue.colorset/Contents.json": {Data: []byte(blueContents)},
		"Broken.colorset/Contents.json":             {Data: []byte(`{"colors": [`)},
		"Empty.colorset/README":                     {Data: []byte("no contents here")},
		"notes.txt":                                 {Data: []byte("plain file")},
	}
}

func TestLocate(t *testing.T) {
	fsys := testCatalog()

	def, err := Locate(fsys, "Red")
	if err != nil {
		t.Fatalf("Locate(Red): %v", err)
	}
	if len(def.Variants) != 1 || def.Variants[0].Color.R != 1 {
		t.Errorf("Locate(Red) = %+v", def)
	}

	def, err = Locate(fsys, "brand/accents/Blue")
	if err != nil {
		t.Fatalf("Locate(brand/accents/Blue): %v", err)
	}
	if len(def.Variants) != 1 || def.Variants[0].Color.B != 1 {
		t.Errorf("Locate(brand/accents/Blue) = %+v", def)
	}
}

func TestLocateFailures(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr error
	}{
		{"empty name", "", ErrInvalidName},
		{"empty segment", "brand//Blue", ErrInvalidName},
		{"trailing slash", "brand/", ErrInvalidName},
		{"dot dot", "../Red", ErrInvalidName},
		{"missing group", "nope/Blue", ErrGroupNotFound},
		{"missing nested group", "brand/nope/Blue", ErrGroupNotFound},
		{"group is a file", "notes.txt/Red", ErrGroupNotFound},
		{"missing color set", "Green", ErrColorSetNotFound},
		{"case mismatch", "red", ErrColorSetNotFound},
		{"ungrouped lookup of grouped color", "Blue", ErrColorSetNotFound},
		{"missing contents", "Empty", ErrContentsUnreadable},
		{"malformed contents", "Broken", ErrMalformedContents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(testCatalog(), tt.color)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Locate(%q) error = %v, want %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	fsys := testCatalog()

	_, err := Locate(fsys, "Green")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
	_, err = Locate(fsys, "Broken")
	if IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = true for malformed contents", err)
	}
}

func TestLocateNormalizesEntryNames(t *testing.T) {
	// "Café" stored decomposed, with a combining acute accent.
	fsys := fstest.MapFS{
		"Cafe\u0301.colorset/Contents.json": {Data: []byte(redContents)},
	}

	if _, err := Locate(fsys, "Caf\u00e9"); err != nil {
		t.Errorf("Locate with precomposed name: %v", err)
	}
}

func TestLocateReadsStorageEveryCall(t *testing.T) {
	dir := t.TempDir()
	set := filepath.Join(dir, "Accent.colorset")
	if err := os.MkdirAll(set, 0o755); err != nil {
		t.Fatal(err)
	}
	contents := filepath.Join(set, ContentsFile)
	if err := os.WriteFile(contents, []byte(redContents), 0o600); err != nil {
		t.Fatal(err)
	}

	fsys := os.DirFS(dir)
	def, err := Locate(fsys, "Accent")
	if err != nil || def.Variants[0].Color.R != 1 {
		t.Fatalf("first Locate = %+v, %v", def, err)
	}

	if err := os.WriteFile(contents, []byte(blueContents), 0o600); err != nil {
		t.Fatal(err)
	}
	def, err = Locate(fsys, "Accent")
	if err != nil || def.Variants[0].Color.B != 1 {
		t.Errorf("second Locate = %+v, %v; want updated contents", def, err)
	}
}

func TestList(t *testing.T) {
	names, err := List(testCatalog())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Broken", "Empty", "Red", "brand/accents/Blue"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestListMissingRoot(t *testing.T) {
	_, err := List(os.DirFS(filepath.Join(t.TempDir(), "absent")))
	if err == nil {
		t.Error("List on a missing root should fail")
	}
}
