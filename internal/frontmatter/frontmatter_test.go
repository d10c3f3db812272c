package frontmatter

import (
	"strings"
	"testing"
)

func TestSplit_WithFrontmatter(t *testing.T) {
	content := "---\ntitle: Monday\ntags:\n  - daily\n---\n# Heading\n\nBody text.\n"

	fields, body, ok := Split(content)
	if !ok {
		t.Fatal("expected front-matter block")
	}

	if title, found := fields.Get("title"); !found || title != "Monday" {
		t.Errorf("expected title 'Monday', got %q (found=%v)", title, found)
	}
	if _, found := fields.Get("tags"); found {
		t.Error("expected sequence value to be reported as not a scalar")
	}
	if body != "# Heading\n\nBody text.\n" {
		t.Errorf("unexpected body: %q", body)
	}
	if fields.Len() != 2 {
		t.Errorf("expected 2 fields, got %d", fields.Len())
	}
}

func TestSplit_NoFrontmatter(t *testing.T) {
	content := "# Just a note\n\nNo metadata here.\n"

	fields, body, ok := Split(content)
	if ok {
		t.Error("expected no front-matter block")
	}
	if fields.Len() != 0 {
		t.Errorf("expected empty fields, got %d", fields.Len())
	}
	if body != content {
		t.Errorf("expected body to be the whole content, got %q", body)
	}
}

func TestSplit_EmptyBlock(t *testing.T) {
	fields, body, ok := Split("---\n---\n\n")
	if !ok {
		t.Fatal("expected empty block to parse")
	}
	if fields.Len() != 0 {
		t.Errorf("expected no fields, got %d", fields.Len())
	}
	if body != "\n" {
		t.Errorf("expected body %q, got %q", "\n", body)
	}
}

func TestSplit_Unclosed(t *testing.T) {
	content := "---\ntitle: x\nno closing line\n"

	_, body, ok := Split(content)
	if ok {
		t.Error("expected unclosed block to be ignored")
	}
	if body != content {
		t.Errorf("expected whole content as body, got %q", body)
	}
}

func TestSplit_Malformed(t *testing.T) {
	tests := []string{
		"---\ntitle: [unterminated\n---\nbody\n",
		"---\n- just\n- a list\n---\nbody\n",
		"---\nplain scalar\n---\nbody\n",
	}

	for _, content := range tests {
		fields, body, ok := Split(content)
		if ok {
			t.Errorf("Split(%q): expected malformed block to be ignored", content)
		}
		if fields.Len() != 0 {
			t.Errorf("Split(%q): expected empty fields, got %d", content, fields.Len())
		}
		if body != content {
			t.Errorf("Split(%q): expected whole content as body, got %q", content, body)
		}
	}
}

func TestSplit_CRLF(t *testing.T) {
	fields, _, ok := Split("---\r\nmood: calm\r\n---\r\nbody\r\n")
	if !ok {
		t.Fatal("expected CRLF block to parse")
	}
	if v, _ := fields.Get("mood"); v != "calm" {
		t.Errorf("expected mood 'calm', got %q", v)
	}
}

func TestGet_NullAndTypes(t *testing.T) {
	fields, _, ok := Split("---\nempty: \"\"\nnothing:\ncount: 3\nflag: true\n---\n")
	if !ok {
		t.Fatal("expected block to parse")
	}

	if v, found := fields.Get("empty"); !found || v != "" {
		t.Errorf("expected empty string to be present, got %q (found=%v)", v, found)
	}
	if _, found := fields.Get("nothing"); found {
		t.Error("expected null value to be absent")
	}
	if v, _ := fields.Get("count"); v != "3" {
		t.Errorf("expected count '3', got %q", v)
	}
	if v, _ := fields.Get("flag"); v != "true" {
		t.Errorf("expected flag 'true', got %q", v)
	}
	if _, found := fields.Get("missing"); found {
		t.Error("expected missing key to be absent")
	}
}

func TestSet_ReplacesInPlace(t *testing.T) {
	fields, body, _ := Split("---\na: 1\ntodaysThought: old\nb: 2\n---\nbody\n")

	fields.Set("todaysThought", "new")

	out, err := Render(fields, body)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	expected := "---\na: 1\ntodaysThought: new\nb: 2\n---\nbody\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestSet_AppendsNewKey(t *testing.T) {
	fields := NewFields()
	fields.Set("todaysThought", "feeling good")

	out, err := Serialize(fields)
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}
	if out != "todaysThought: feeling good\n" {
		t.Errorf("unexpected yaml: %q", out)
	}
}

func TestSet_QuotesAmbiguousStrings(t *testing.T) {
	fields := NewFields()
	fields.Set("todaysThought", "123")
	fields.Set("other", "")

	out, err := Serialize(fields)
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}

	reparsed, _, ok := Split("---\n" + out + "---\n")
	if !ok {
		t.Fatalf("expected serialized output to parse, got %q", out)
	}
	if v, found := reparsed.Get("todaysThought"); !found || v != "123" {
		t.Errorf("expected '123', got %q (found=%v)", v, found)
	}
	if v, found := reparsed.Get("other"); !found || v != "" {
		t.Errorf("expected empty string, got %q (found=%v)", v, found)
	}
}

func TestSet_MultilineValue(t *testing.T) {
	fields := NewFields()
	fields.Set("todaysThought", "line one\nline two")

	out, err := Serialize(fields)
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}
	if !strings.Contains(out, "|") {
		t.Errorf("expected literal block style, got %q", out)
	}

	reparsed, _, _ := Split("---\n" + out + "---\n")
	if v, _ := reparsed.Get("todaysThought"); v != "line one\nline two" {
		t.Errorf("expected multiline value to survive, got %q", v)
	}
}

func TestCodec_RenderMatchesRender(t *testing.T) {
	content := "---\nb: 2\na: 1\n---\nbody\n"

	var codec Codec
	fields, body, ok := codec.Split(content)
	if !ok {
		t.Fatal("expected front-matter block")
	}
	fields.Set("a", "changed")

	got, err := codec.Render(fields, body)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	want, _ := Render(fields, body)
	if got != want {
		t.Errorf("codec render %q differs from Render %q", got, want)
	}
	if got != "---\nb: 2\na: changed\n---\nbody\n" {
		t.Errorf("unexpected note: %q", got)
	}
}

func TestSerialize_Empty(t *testing.T) {
	out, err := Serialize(NewFields())
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRender_EmptyBody(t *testing.T) {
	fields := NewFields()
	fields.Set("todaysThought", "x")

	out, err := Render(fields, "")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "---\ntodaysThought: x\n---\n\n" {
		t.Errorf("unexpected note: %q", out)
	}
}
