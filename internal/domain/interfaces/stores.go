package interfaces

import (
	domaintypes "critiplot/internal/domain/types"
)

// TableReader loads a raw table from a file on disk.
type TableReader interface {
	ReadFile(path string) (domaintypes.RawTable, error)
}

// ArtifactStore persists rendered artifacts.
type ArtifactStore interface {
	// WriteArtifact atomically writes b to path and returns the digest of b.
	WriteArtifact(path string, b []byte) (string, error)
	// WriteManifest writes the JSON manifest for one render next to its artifacts.
	WriteManifest(path string, m domaintypes.Manifest) error
}
