package shader

import (
	"testing"
	"unsafe"
)

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"uTime", "uTime\x00"},
		{"uTime\x00", "uTime\x00"},
		{"", "\x00"},
		{"#version 410 core\nvoid main() {}\n", "#version 410 core\nvoid main() {}\n\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInfoLog(t *testing.T) {
	if got := infoLog(0, func(*uint8) { t.Fatal("fill called for empty log") }); got != "(no log)" {
		t.Errorf("empty log = %q", got)
	}

	msg := "ERROR: 0:3: undeclared identifier\n\x00"
	got := infoLog(int32(len(msg)), func(buf *uint8) {
		copy(unsafe.Slice(buf, len(msg)), msg)
	})
	if got != "ERROR: 0:3: undeclared identifier" {
		t.Errorf("infoLog = %q", got)
	}
}
