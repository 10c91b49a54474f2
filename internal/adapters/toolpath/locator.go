// Package toolpath resolves external tools on the execution search path.
package toolpath

import (
	"os/exec"

	"go.trai.ch/zerr"
)

// Locator implements ports.ToolLocator using exec.LookPath.
type Locator struct{}

// NewLocator creates a new path-based Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Look resolves the named tool against PATH. The probe is read-only.
func (l *Locator) Look(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "tool not found"), "tool", name)
	}
	return path, nil
}
