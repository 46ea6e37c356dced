package jsontree

import (
	"math"
	"strings"
	"testing"
)

func TestValidateTable(t *testing.T) {
	deep := Array(Number(1))
	for i := 0; i < 10; i++ {
		deep = Array(deep)
	}

	unsafeKey := NewObject()
	unsafeKey.Set("a\"b", Number(1))

	tests := []struct {
		name     string
		val      Value
		opt      *ValidateOptions
		wantWarn int
		wantErr  int
	}{
		{
			name:     "ok_scalars",
			val:      Array(Null(), Bool(true), Number(28.5), String("bob")),
			opt:      nil,
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name:     "unsafe_string",
			val:      String("say \"hi\""),
			opt:      nil,
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name:     "unsafe_key",
			val:      unsafeKey.Value(),
			opt:      nil,
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name:     "control_char",
			val:      String("tab\there"),
			opt:      nil,
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name:     "string_check_disabled",
			val:      String("say \"hi\""),
			opt:      &ValidateOptions{DisableStringCheck: true},
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name:     "nan_number",
			val:      Number(math.NaN()),
			opt:      nil,
			wantWarn: 0,
			wantErr:  1,
		},
		{
			name:     "infinite_number",
			val:      Array(Number(math.Inf(1)), Number(math.Inf(-1))),
			opt:      nil,
			wantWarn: 0,
			wantErr:  2,
		},
		{
			name:     "number_check_disabled",
			val:      Number(math.NaN()),
			opt:      &ValidateOptions{DisableNumberCheck: true},
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name:     "deep_nesting",
			val:      deep,
			opt:      &ValidateOptions{MaxDepth: 3},
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name:     "depth_check_disabled",
			val:      deep,
			opt:      &ValidateOptions{MaxDepth: 3, DisableDepthCheck: true},
			wantWarn: 0,
			wantErr:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(tt.val, tt.opt)
			var warns, errs int
			for _, it := range issues {
				switch it.Level {
				case IssueWarning:
					warns++
				case IssueError:
					errs++
				}
			}
			if warns != tt.wantWarn || errs != tt.wantErr {
				t.Fatalf("unexpected issues: warnings=%d errors=%d issues=%v", warns, errs, issues)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	inner := NewObject()
	inner.Set("b", String("bad\"one"))

	obj := NewObject()
	obj.Set("a", Array(Number(1), inner.Value()))

	issues := Validate(obj.Value(), nil)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", issues)
	}
	if issues[0].Path != "$.a[1].b" {
		t.Fatalf("unexpected path: %q", issues[0].Path)
	}
	if issues[0].Code != "unsafe_string" {
		t.Fatalf("unexpected code: %q", issues[0].Code)
	}
}

func TestValidateParsedDocument(t *testing.T) {
	v, err := Parse([]byte(`{"title":"plain","count":3}`), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if issues := Validate(v, nil); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestEscapeString(t *testing.T) {
	if got := EscapeString("plain text"); got != "plain text" {
		t.Fatalf("expected unchanged string, got %q", got)
	}

	got := EscapeString("a\"b\\c\x01")
	if got != `a\"b\\c\u0001` {
		t.Fatalf("unexpected escape result: %q", got)
	}
	if !strings.Contains(EscapeString("line\nbreak"), `\n`) {
		t.Fatalf("expected newline escape")
	}
}
