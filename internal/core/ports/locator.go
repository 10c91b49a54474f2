package ports

// ToolLocator probes for external tools on the execution path. It is
// injectable so tests can fake tool presence without touching the real
// environment.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolLocator interface {
	// Look returns the resolved path of the named tool, or an error when
	// the tool is not installed.
	Look(name string) (string, error)
}
