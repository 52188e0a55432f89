package noise

import (
	"testing"

	"go.uber.org/zap"
)

func TestIsChrome(t *testing.T) {
	checker := NewChecker([]string{
		"File Edit View Window Help",
		"  save   changes  ",
		"",
	}, zap.NewNop())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact phrase", "File Edit View Window Help", true},
		{"case insensitive", "file edit view window help", true},
		{"ocr whitespace noise", "File  Edit\tView   Window Help", true},
		{"phrase with padded config entry", "Save Changes", true},
		{"unknown phrase", "Open Recent Files", false},
		{"code text", "function hello() {}", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.IsChrome(tt.text); got != tt.want {
				t.Errorf("IsChrome(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsChromeNoPhrases(t *testing.T) {
	checker := NewChecker(nil, zap.NewNop())
	if checker.IsChrome("File Edit View Window Help") {
		t.Error("IsChrome = true with no configured phrases")
	}
}
