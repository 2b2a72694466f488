package textutil

import (
	"strings"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "Hello", 5},
		{"ascii with space", "hello world", 11},
		{"hiragana", "こんにちは", 10},
		{"kanji", "日本語", 6},
		{"mixed", "Hello世界", 9},
		{"mixed long", "testこんにちは", 14},
		{"ideographic space", "　", 2},
		{"full-width exclamation", "！", 2},
		{"other multibyte", "é", 2},
		{"emoji", "📁", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "he..."},
		{"hello world", 8, "hello..."},
		{"こんにちは", 4, "こん"},
		{"こんにちは", 6, "こんに"},
		{"hello世界", 7, "hell..."},
		{"hello世界", 6, "hel..."},
		{"hello", 2, "he"},
		{"", 10, ""},
		{"a", 5, "a"},
		{"あ", 5, "あ"},
		{"hello", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("TruncateToWidth(%q, %d)=%q want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncateToWidthIsIdempotent(t *testing.T) {
	inputs := []string{"hello world", "こんにちは世界", "mixed 日本語 text", "a", "", "ｆｕｌｌ　ｗｉｄｔｈ"}
	for _, text := range inputs {
		for width := 0; width <= 20; width++ {
			once := TruncateToWidth(text, width)
			if twice := TruncateToWidth(once, width); twice != once {
				t.Fatalf("TruncateToWidth not idempotent for %q at %d: %q then %q", text, width, once, twice)
			}
			if DisplayWidth(once) > width && DisplayWidth(text) > width {
				t.Fatalf("TruncateToWidth(%q, %d)=%q exceeds width", text, width, once)
			}
		}
	}
}

func TestPadToWidth(t *testing.T) {
	if got := PadToWidth("foo", 10); got != "foo       " {
		t.Fatalf("expected padded string, got %q", got)
	}
	if got := PadToWidth("hello", 5); got != "hello" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
	if got := PadToWidth("", 10); got != strings.Repeat(" ", 10) {
		t.Fatalf("expected blank string, got %q", got)
	}
	got := PadToWidth("世界", 10)
	if !strings.HasPrefix(got, "世界") || DisplayWidth(got) != 10 {
		t.Fatalf("expected 世界 padded to 10 cells, got %q", got)
	}
}

func TestPadToWidthProperties(t *testing.T) {
	inputs := []string{"hello world", "こんにちは", "Hello世界", "x", "", "a b c"}
	for _, text := range inputs {
		width := DisplayWidth(text)
		if got := PadToWidth(text, width); got != text {
			t.Fatalf("PadToWidth(%q, own width) = %q", text, got)
		}
		for n := 0; n <= width+5; n++ {
			if got := DisplayWidth(PadToWidth(text, n)); got != n {
				t.Fatalf("DisplayWidth(PadToWidth(%q, %d)) = %d", text, n, got)
			}
		}
	}
}

func TestFindBreakPoint(t *testing.T) {
	if got := FindBreakPoint("hello", 10); got != 5 {
		t.Fatalf("expected full length, got %d", got)
	}
	if got := FindBreakPoint("verylongword", 5); got != 5 {
		t.Fatalf("expected raw cutoff 5, got %d", got)
	}
	if got := FindBreakPoint("hello world test", 12); got != 12 {
		t.Fatalf("expected break after second space, got %d", got)
	}
	if got := FindBreakPoint("hello world test", 10); got != 6 {
		t.Fatalf("expected break after first space, got %d", got)
	}
	// これは、テストです。 -> the comma sits at width 8, past half of 10.
	if got := FindBreakPoint("これは、テストです。", 10); got != 4 {
		t.Fatalf("expected break after punctuation, got %d", got)
	}
}

func TestFindBreakPointIgnoresEarlySpace(t *testing.T) {
	// The space is at width 2, not past half of 10.
	if got := FindBreakPoint("a bcdefghijklmnop", 10); got != 10 {
		t.Fatalf("expected raw cutoff, got %d", got)
	}
}

func TestWrapLines(t *testing.T) {
	got := WrapLines([]string{"short", "hello world test"}, 12)
	want := []string{"short", "hello world ", "test"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("WrapLines = %q, want %q", got, want)
	}
	for _, line := range WrapLines([]string{"日本語の長い行がここにあります"}, 5) {
		if DisplayWidth(line) > 5 {
			t.Fatalf("wrapped line %q exceeds width", line)
		}
	}
	if got := WrapLines([]string{"x"}, 0); got != nil {
		t.Fatalf("expected nil for zero width, got %q", got)
	}
}

func TestTrimLeftToWidth(t *testing.T) {
	if got := TrimLeftToWidth("/home/user/projects", 8); got != "projects" {
		t.Fatalf("expected suffix, got %q", got)
	}
	if got := TrimLeftToWidth("/日本/語", 3); got != "/語" {
		t.Fatalf("expected wide suffix, got %q", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb", 4); got != "a   b" {
		t.Fatalf("ExpandTabs = %q", got)
	}
	if got := ExpandTabs("日\tb", 4); got != "日  b" {
		t.Fatalf("ExpandTabs with wide rune = %q", got)
	}
}
