package jsontree

import (
	"math"
	"strconv"
)

// IssueLevel represents severity of a validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected value
}

// Validate checks a Value tree for content that would not serialize to valid
// JSON and returns issues with JSON-path locations.
func Validate(v Value, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	walkValue(v, "$", 0, vopt, &out)
	return out
}

// walkValue validates a single value and recurses into containers.
func walkValue(v Value, path string, depth int, opt ValidateOptions, out *[]Issue) {
	switch v.Kind {
	case KindNumber:
		if !opt.DisableNumberCheck {
			if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
				*out = append(*out, Issue{Level: IssueError, Code: "nonfinite_number", Message: "number is not finite", Path: path})
			}
		}

	case KindString:
		if !opt.DisableStringCheck && needsEscape(v.Str) {
			*out = append(*out, Issue{Level: IssueWarning, Code: "unsafe_string", Message: "string requires escaping", Path: path})
		}

	case KindArray:
		if tooDeep(depth, path, opt, out) {
			return
		}
		for i, e := range v.Arr {
			walkValue(e, path+"["+strconv.Itoa(i)+"]", depth+1, opt, out)
		}

	case KindObject:
		if tooDeep(depth, path, opt, out) {
			return
		}
		for _, m := range v.Obj.Members() {
			mp := path + "." + m.Key
			if !opt.DisableStringCheck && needsEscape(m.Key) {
				*out = append(*out, Issue{Level: IssueWarning, Code: "unsafe_string", Message: "key requires escaping", Path: mp})
			}
			walkValue(m.Value, mp, depth+1, opt, out)
		}
	}
}

// tooDeep reports nesting beyond the configured depth and stops descent.
func tooDeep(depth int, path string, opt ValidateOptions, out *[]Issue) bool {
	if opt.DisableDepthCheck || depth < opt.MaxDepth {
		return false
	}

	*out = append(*out, Issue{Level: IssueWarning, Code: "deep_nesting", Message: "nesting depth exceeds limit", Path: path})
	return true
}
