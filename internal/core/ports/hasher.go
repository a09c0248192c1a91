package ports

// FileHasher defines the interface for computing file content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// ComputeFileHash returns a hex encoded content hash of the file at path.
	ComputeFileHash(path string) (string, error)
}
