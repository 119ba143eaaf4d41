package textio

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLinesUTF8(t *testing.T) {
	path := writeTemp(t, []byte("première ligne\nsecond line\n"))
	got, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"première ligne", "second line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines = %q, want %q", got, want)
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	path := writeTemp(t, []byte("one\ntwo"))
	got, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("ReadLines = %q, want [one two]", got)
	}
}

func TestReadLinesCRLF(t *testing.T) {
	path := writeTemp(t, []byte("one\r\ntwo\r\n"))
	got, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("ReadLines = %q, want [one two]", got)
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := writeTemp(t, nil)
	got, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadLines = %q, want no lines", got)
	}
}

func TestReadLinesTranscodesLatin1(t *testing.T) {
	// "été" in ISO 8859-1: 0xE9 t 0xE9.
	path := writeTemp(t, []byte{0xE9, 't', 0xE9, '\n'})
	got, err := ReadLines(path, "iso-8859-1")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"été"}) {
		t.Errorf("ReadLines = %q, want [été]", got)
	}
}

func TestReadLinesUnknownEncoding(t *testing.T) {
	path := writeTemp(t, []byte("x\n"))
	if _, err := ReadLines(path, "ebcdic-37"); err == nil {
		t.Error("ReadLines with unknown encoding succeeded, want error")
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "absent"), ""); err == nil {
		t.Error("ReadLines on a missing file succeeded, want error")
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("a", 300*1024)
	path := writeTemp(t, []byte(long+"\n"))
	got, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 1 || len(got[0]) != len(long) {
		t.Errorf("ReadLines kept %d lines, first %d bytes; want 1 line of %d bytes", len(got), len(got[0]), len(long))
	}
}

func TestValidateEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "iso-8859-1", "windows-1252", "shift_jis", "euc-kr"} {
		if err := ValidateEncoding(name); err != nil {
			t.Errorf("ValidateEncoding(%q): %v", name, err)
		}
	}
	if err := ValidateEncoding("not-a-charset"); err == nil {
		t.Error("ValidateEncoding(not-a-charset) succeeded, want error")
	}
}
