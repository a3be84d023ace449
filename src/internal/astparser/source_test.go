package astparser

import "testing"

func TestParseSourceLocation(t *testing.T) {
	loc, err := ParseSourceLocation("4:5:0")
	if err != nil {
		t.Fatalf("ParseSourceLocation: %v", err)
	}
	if loc != (SourceLocation{Offset: 4, Length: 5, FileIndex: 0}) {
		t.Fatalf("loc = %+v", loc)
	}
	if got := loc.Slice("abc function f()"); got != "funct" {
		t.Fatalf("Slice = %q", got)
	}

	loc, err = ParseSourceLocation("0:3")
	if err != nil || loc.FileIndex != -1 {
		t.Fatalf("two-part src: %+v, %v", loc, err)
	}

	for _, bad := range []string{"", "1", "a:2:0", "1:b:0", "1:2:c", "1:2:3:4"} {
		if _, err := ParseSourceLocation(bad); err == nil {
			t.Errorf("ParseSourceLocation(%q) should fail", bad)
		}
	}
}

func TestSourceLocationSliceOutOfRange(t *testing.T) {
	src := "contract C {}"
	for _, loc := range []SourceLocation{
		{Offset: 20, Length: 1},
		{Offset: 10, Length: 10},
		{Offset: -1, Length: 2},
	} {
		if got := loc.Slice(src); got != "" {
			t.Errorf("%+v.Slice = %q, want empty", loc, got)
		}
	}
}

func TestSourceLocationSliceHugeLength(t *testing.T) {
	loc, err := ParseSourceLocation("1:9223372036854775807:0")
	if err != nil {
		t.Fatalf("ParseSourceLocation: %v", err)
	}
	if got := loc.Slice("contract C {}"); got != "" {
		t.Fatalf("Slice = %q, want empty", got)
	}
}
