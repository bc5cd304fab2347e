package versions

import (
	"fmt"
	"slices"
	"strings"
)

// Arg is a version argument: exactly one version, or an ordered list of
// versions meaning "repeat for each".
type Arg struct {
	values []string
	many   bool
}

// Single creates an Arg holding one version.
func Single(v string) Arg {
	return Arg{values: []string{v}}
}

// Many creates an Arg holding an ordered list of versions.
func Many(vs ...string) Arg {
	return Arg{values: slices.Clone(vs), many: true}
}

// FromList builds Single for a one-element list and Many otherwise.
func FromList(vs []string) Arg {
	if len(vs) == 1 {
		return Single(vs[0])
	}
	return Many(vs...)
}

// Parse splits a comma-separated list of versions. Blank entries are dropped.
func Parse(raw string) Arg {
	var vs []string
	for part := range strings.SplitSeq(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			vs = append(vs, p)
		}
	}
	return FromList(vs)
}

// IsMany reports whether the argument is a list.
func (a Arg) IsMany() bool {
	return a.many
}

// Values returns the versions in order.
func (a Arg) Values() []string {
	return slices.Clone(a.values)
}

// Len returns the number of versions.
func (a Arg) Len() int {
	return len(a.values)
}

// Validate rejects empty arguments and blank versions.
func (a Arg) Validate() error {
	if len(a.values) == 0 {
		return fmt.Errorf("no versions given")
	}
	for i, v := range a.values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("version %d is blank", i)
		}
	}
	return nil
}

func (a Arg) String() string {
	if !a.many {
		return strings.Join(a.values, "")
	}
	return "[" + strings.Join(a.values, ", ") + "]"
}
