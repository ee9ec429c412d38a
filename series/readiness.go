package series

import (
	"fmt"
	"strings"

	"github.com/dnldd/candleplugin/shared"
)

// Policy represents how much of the configured data must be present before a pass runs.
type Policy int

const (
	// Lenient admits a pass once any configured column has data.
	Lenient Policy = iota
	// Strict admits a pass only once every configured column has data.
	Strict
)

// String stringifies the provided policy.
func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParsePolicy returns the readiness policy with the provided name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("unknown readiness policy '%s'", name)
	}
}

// IsReady checks whether the store holds enough of the configured columns for a pass.
// A column that is absent, empty, or bound to no identifier counts as missing.
func IsReady(cfg shared.FieldConfig, store shared.Store, policy Policy) bool {
	present := 0
	for _, f := range shared.Fields {
		if len(store.Column(cfg.Column(f))) > 0 {
			present++
		}
	}

	switch policy {
	case Strict:
		return present == len(shared.Fields)
	default:
		return present > 0
	}
}
