package platform

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/glengine/engine/core"
)

// WindowFlags select the framebuffer attributes requested at surface creation.
type WindowFlags uint32

const (
	// RGB color buffer. Always requested.
	WindowRGB WindowFlags = 0
	// Alpha channel in the color buffer.
	WindowAlpha WindowFlags = 1
	// Depth buffer.
	WindowDepth WindowFlags = 2
	// Stencil buffer.
	WindowStencil WindowFlags = 4
	// Multi-sample buffer.
	WindowMultisample WindowFlags = 8
)

var flagNames = []struct {
	name string
	flag WindowFlags
}{
	{"alpha", WindowAlpha},
	{"depth", WindowDepth},
	{"stencil", WindowStencil},
	{"multisample", WindowMultisample},
}

func (f WindowFlags) Has(flag WindowFlags) bool {
	return f&flag == flag
}

func (f WindowFlags) String() string {
	names := []string{"rgb"}
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseWindowFlags combines flag names as found in configuration files.
func ParseWindowFlags(names []string) (WindowFlags, error) {
	var flags WindowFlags
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "rgb" {
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == n {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown window flag %q", core.ErrInvalidConfig, n)
		}
	}
	return flags, nil
}
