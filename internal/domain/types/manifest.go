package types

// Artifact describes one exported file.
type Artifact struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Bytes  int    `json:"bytes"`
	Digest string `json:"blake2b_256"`
}

// Manifest records the artifacts produced by one render.
type Manifest struct {
	RunID     string     `json:"run_id"`
	Tool      ToolID     `json:"tool"`
	Theme     string     `json:"theme"`
	Studies   int        `json:"studies"`
	CreatedAt string     `json:"created_at"`
	Artifacts []Artifact `json:"artifacts"`
}

// RenderResult is returned by a render: the artifacts written and the manifest path, if any.
type RenderResult struct {
	Artifacts    []Artifact
	ManifestPath string
}
