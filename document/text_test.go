// ABOUTME: Tests for plain-text extraction and word counting over editor markup.
package document

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{name: "placeholder", markup: Placeholder, want: ""},
		{name: "inline formatting", markup: "<p>hello <b>bold</b> world</p>", want: "hello bold world"},
		{name: "paragraphs split", markup: "<p>one</p><p>two</p>", want: "one\ntwo"},
		{name: "br splits", markup: "a<br>b", want: "a\nb"},
		{name: "entities decoded", markup: "<p>fish &amp; chips</p>", want: "fish & chips"},
		{name: "style hidden", markup: "<style>p{}</style><p>x</p>", want: "x"},
		{name: "textarea hidden", markup: "<textarea>draft</textarea><p>x</p>", want: "x"},
		{name: "plain text", markup: "foo bar foo", want: "foo bar foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.markup); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"  one   two\nthree\t four ", 4},
		{"a b", 2},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestWordCountAcrossParagraphs(t *testing.T) {
	got := WordCount(PlainText("<p>alpha</p><p>beta gamma</p>"))
	if got != 3 {
		t.Errorf("word count = %d, want 3", got)
	}
}
