package config

import "os"

// Loader loads manifests from the filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadManifest loads a manifest from the given path, translating parse
// and lookup failures into user-facing errors. Anything ParseManifest
// rejects is by construction a parse error, so it is wrapped without
// inspecting the message.
func (l *Loader) LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewManifestNotFoundError(path)
		}
		return nil, err
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, NewYAMLParseError(path, err)
	}
	return manifest, nil
}
