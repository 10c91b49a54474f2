package ports

// Hasher computes content digests of files on disk.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file's contents.
	ComputeFileHash(path string) (string, error)
}
