package repair

import (
	"fmt"
	"strings"

	"github.com/leextar/readercache/internal/format"
)

// Severity classifies how serious a diagnostic issue is
type Severity int

const (
	SevInfo     Severity = iota // Informational (expected, e.g. an older layout)
	SevWarning                  // Repaired in place, no data lost
	SevError                    // Repaired with data loss
	SevCritical                 // File unusable, store reset to defaults
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return unknownString
	}
}

// Category classifies the type of issue found
type Category int

const (
	CatStructure Category = iota // Status, sizes, counts
	CatLayout                    // Schema drift between writer and reader
	CatIntegrity                 // Record ids, mark counts, selection
)

func (c Category) String() string {
	switch c {
	case CatStructure:
		return "STRUCTURE"
	case CatLayout:
		return "LAYOUT"
	case CatIntegrity:
		return "INTEGRITY"
	default:
		return unknownString
	}
}

// Action is the outcome of reconciling a loaded file.
type Action int

const (
	// ActionKept means the file already has the current layout.
	ActionKept Action = iota
	// ActionMigrated means records were copied forward into the current layout.
	ActionMigrated
	// ActionReset means the file was discarded and defaults were used.
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionKept:
		return "KEPT"
	case ActionMigrated:
		return "MIGRATED"
	case ActionReset:
		return "RESET"
	default:
		return unknownString
	}
}

const unknownString = "UNKNOWN"

// Diagnostic is a single issue found (and usually fixed) while reconciling.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Category  Category `json:"category"`
	Offset    int64    `json:"offset"`          // Byte offset in the buffer the issue was found in
	Structure string   `json:"structure"`       // "HEADER" or "RECORD"
	Index     int      `json:"index,omitempty"` // Record index, when Structure is RECORD
	Issue     string   `json:"issue"`
	Expected  any      `json:"expected,omitempty"`
	Actual    any      `json:"actual,omitempty"`
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s %s @0x%X", d.Severity, d.Category, d.Structure, d.Offset)
	if d.Structure == structRecord {
		fmt.Fprintf(&sb, " #%d", d.Index)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Issue)
	if d.Expected != nil || d.Actual != nil {
		fmt.Fprintf(&sb, " (expected %v, got %v)", d.Expected, d.Actual)
	}
	return sb.String()
}

const (
	structHeader = "HEADER"
	structRecord = "RECORD"
)

// Report describes what reconciling a loaded file found and did.
type Report struct {
	Action Action `json:"action"`
	// Stored is the header core as found on disk. Zero when the file was
	// too short to hold one.
	Stored format.Header `json:"stored"`
	// Source is the layout the records are read with when migrating. Nil
	// for the prefix fallback and for resets.
	Source *format.Layout `json:"-"`
	// Fallback is set when the stored sizes match no known layout and the
	// common-prefix copy was used.
	Fallback bool `json:"fallback,omitempty"`
	// Size is the number of bytes of the stored file that hold data.
	Size        int          `json:"size"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (r *Report) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Worst returns the highest severity recorded, or SevInfo for a clean report.
func (r *Report) Worst() Severity {
	worst := SevInfo
	for _, d := range r.Diagnostics {
		if d.Severity > worst {
			worst = d.Severity
		}
	}
	return worst
}

// Count returns the number of diagnostics of at least severity s.
func (r *Report) Count(s Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity >= s {
			n++
		}
	}
	return n
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
