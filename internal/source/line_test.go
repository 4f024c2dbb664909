package source

import "testing"

func TestLineText(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.php", []byte("<?php\r\n#[A]\nclass B {}")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "<?php"},
		{2, "#[A]"},
		{3, "class B {}"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.LineText(tt.line); got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLineTextTrailingNewline(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.php", []byte("<?php\n")))
	if got := f.LineText(2); got != "" {
		t.Errorf("LineText(2) = %q, want empty", got)
	}
}
