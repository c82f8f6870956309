package source

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestDecodePlainUTF8(t *testing.T) {
	got, err := Decode([]byte("PRINT(\"hi\");"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "PRINT(\"hi\");" {
		t.Errorf("Decode() = %q", got)
	}
}

func TestDecodeStripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("PRINT(1);")...)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "PRINT(1);" {
		t.Errorf("Decode() = %q, want stripped of its BOM", got)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("PRINT(2);"))
	if err != nil {
		t.Fatalf("encoder setup error = %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "PRINT(2);" {
		t.Errorf("Decode() = %q, want %q", got, "PRINT(2);")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.pfx")
	if err := os.WriteFile(path, []byte("PRINT(3);"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "PRINT(3);" {
		t.Errorf("ReadFile() = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.pfx")); err == nil {
		t.Errorf("ReadFile() error = nil, want an error for a missing file")
	}
}
