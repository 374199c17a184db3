package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Run("utf-8 passthrough", func(t *testing.T) {
		if got := Decode([]byte("Hello, World!"), "utf-8"); got != "Hello, World!" {
			t.Errorf("Decode = %q", got)
		}
	})

	t.Run("shift_jis", func(t *testing.T) {
		// SHIFT_JIS encoding of 日本語.
		data := []byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA}
		if got := Decode(data, "shift_jis"); got != "日本語" {
			t.Errorf("Decode = %q, want 日本語", got)
		}
	})

	t.Run("euc-jp", func(t *testing.T) {
		// EUC-JP encoding of 日本語.
		data := []byte{0xC6, 0xFC, 0xCB, 0xDC, 0xB8, 0xEC}
		if got := Decode(data, "euc-jp"); got != "日本語" {
			t.Errorf("Decode = %q, want 日本語", got)
		}
	})

	t.Run("unknown label falls back to utf-8", func(t *testing.T) {
		if got := Decode([]byte("Hello"), "no-such-encoding"); got != "Hello" {
			t.Errorf("Decode = %q", got)
		}
	})

	t.Run("empty label", func(t *testing.T) {
		if got := Decode([]byte("plain"), ""); got != "plain" {
			t.Errorf("Decode = %q", got)
		}
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("id=abc sql=SELECT 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadFile(path, "utf-8")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if text != "id=abc sql=SELECT 1\n" {
		t.Errorf("text = %q", text)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.log"), "utf-8"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
