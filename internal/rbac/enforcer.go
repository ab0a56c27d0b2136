package rbac

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// NewEnforcer builds a casbin enforcer from the embedded model and the static
// allow-list. There is no wildcard fallback in the matcher beyond explicit
// "*" policy entries, so anything not listed is denied.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	for _, line := range strings.Split(policyText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 || strings.TrimSpace(fields[0]) != "p" {
			return nil, fmt.Errorf("rbac policy: malformed line %q", line)
		}
		if _, err := e.AddPolicy(
			strings.TrimSpace(fields[1]),
			strings.TrimSpace(fields[2]),
			strings.TrimSpace(fields[3]),
		); err != nil {
			return nil, fmt.Errorf("rbac policy: %w", err)
		}
	}

	return e, nil
}
