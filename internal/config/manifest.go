// Package config provides loading and validation of the gitvend manifest,
// the JSON file describing the checkouts a project depends on.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultManifestName is the manifest file gitvend sync looks for.
const DefaultManifestName = "gitvend.json"

// Checkout describes one managed git checkout.
type Checkout struct {
	// URL is the remote to clone from.
	URL string `json:"url"`
	// Dir is the checkout location; relative paths are resolved against the
	// manifest's directory.
	Dir string `json:"dir"`
	// Ref pins the checkout to a branch or, when Tag is set, a tag. Empty
	// means stay on the current branch and fast-forward it.
	Ref string `json:"ref,omitempty"`
	// Tag marks Ref as a tag, checked out detached.
	Tag bool `json:"tag,omitempty"`
	// Submodules clones with recursive submodule checkout.
	Submodules bool `json:"submodules,omitempty"`
	// Run lists argument vectors executed inside the checkout after syncing.
	Run [][]string `json:"run,omitempty"`
}

// Manifest is the root of a gitvend.json file.
type Manifest struct {
	Checkouts []Checkout `json:"checkouts"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range manifest.Checkouts {
		checkout := &manifest.Checkouts[i]
		if err := checkout.validate(); err != nil {
			return nil, fmt.Errorf("manifest %s: checkout %d: %w", path, i, err)
		}
		if !filepath.IsAbs(checkout.Dir) {
			checkout.Dir = filepath.Join(base, checkout.Dir)
		}
	}

	return &manifest, nil
}

func (c *Checkout) validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if c.Tag && c.Ref == "" {
		return fmt.Errorf("tag requires a ref")
	}
	for i, argv := range c.Run {
		if len(argv) == 0 {
			return fmt.Errorf("run command %d is empty", i)
		}
	}
	return nil
}
