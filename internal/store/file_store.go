package store

import (
	"fmt"
	"strings"
	"sync"

	"critiplot/internal/digest"
	"critiplot/internal/domain"
)

const (
	artifactMode = 0o644
	manifestExt  = ".manifest.json"
)

// FileStore writes artifacts under their target paths.
type FileStore struct {
	mu sync.Mutex
}

// NewFileStore returns an artifact store.
func NewFileStore() *FileStore { return &FileStore{} }

// WriteArtifact atomically writes b to path and returns its BLAKE2b-256 digest.
func (s *FileStore) WriteArtifact(path string, b []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(path, b, artifactMode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return digest.Sum(b), nil
}

// WriteManifest writes m as indented JSON to path.
func (s *FileStore) WriteManifest(path string, m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(path, m, artifactMode); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func (s *FileStore) ReadManifest(path string) (domain.Manifest, error) {
	var m domain.Manifest
	if err := readJSON(path, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return m, nil
}

// ManifestPath returns the manifest path for an artifact path:
// "out/NOS_TrafficLight.png" -> "out/NOS_TrafficLight.manifest.json".
func ManifestPath(artifact string) string {
	if i := strings.LastIndexByte(artifact, '.'); i > strings.LastIndexAny(artifact, `/\`) {
		artifact = artifact[:i]
	}
	return artifact + manifestExt
}

// Compile-time assertion that FileStore implements domain.ArtifactStore.
var _ domain.ArtifactStore = (*FileStore)(nil)
