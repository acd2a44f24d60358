// Package addon reads and writes the Kodi addon.xml manifest. The document
// is kept as a parsed tree so version and news updates preserve the rest of
// the file's structure, comments, and attribute order.
package addon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/ariel-frischer/addonbuild/internal/semver"
)

// ManifestName is the fixed filename of the Kodi addon manifest.
const ManifestName = "addon.xml"

// metadataPath selects the addon metadata extension element that owns the
// news field.
const metadataPath = "extension[@point='xbmc.addon.metadata']"

// Find locates addon.xml in root or exactly one level of subdirectories
// (the common layout where the addon lives in a plugin.* directory).
func Find(root string) (string, error) {
	direct := filepath.Join(root, ManifestName)
	if fileExists(direct) {
		return direct, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("reading directory %s: %w", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		nested := filepath.Join(root, entry.Name(), ManifestName)
		if fileExists(nested) {
			return nested, nil
		}
	}

	return "", fmt.Errorf("could not find %s in %s or its subdirectories", ManifestName, root)
}

// Manifest is a loaded, validated addon.xml document.
type Manifest struct {
	doc  *etree.Document
	path string
}

// Load parses and validates an addon.xml file. A Manifest that loads has an
// `addon` root element carrying a valid semver version attribute.
func Load(path string) (*Manifest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("invalid XML in %s: %w", path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("invalid XML in %s: no root element", path)
	}
	if root.Tag != "addon" {
		return nil, fmt.Errorf("invalid %s: root element is not 'addon' (got %q)", ManifestName, root.Tag)
	}

	version := root.SelectAttrValue("version", "")
	if version == "" {
		return nil, fmt.Errorf("invalid %s: no version attribute found", ManifestName)
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("invalid version %q in %s (expected X.Y.Z)", version, ManifestName)
	}

	return &Manifest{doc: doc, path: path}, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string { return m.path }

// ID returns the addon identifier attribute.
func (m *Manifest) ID() string {
	return m.doc.Root().SelectAttrValue("id", "")
}

// Version returns the version attribute of the addon element.
func (m *Manifest) Version() string {
	return m.doc.Root().SelectAttrValue("version", "")
}

// SetVersion replaces the version attribute of the addon element.
func (m *Manifest) SetVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid version %q (expected X.Y.Z)", version)
	}
	m.doc.Root().CreateAttr("version", version)
	return nil
}

// News returns the text of the news element in the addon metadata
// extension, or empty string if absent.
func (m *Manifest) News() string {
	meta := m.doc.Root().FindElement(metadataPath)
	if meta == nil {
		return ""
	}
	news := meta.FindElement("news")
	if news == nil {
		return ""
	}
	return news.Text()
}

// SetNews writes text verbatim into the news element of the addon metadata
// extension, creating the element when absent. Fails when the manifest has
// no metadata extension to attach it to.
func (m *Manifest) SetNews(text string) error {
	meta := m.doc.Root().FindElement(metadataPath)
	if meta == nil {
		return fmt.Errorf("%s has no %s extension for the news field", ManifestName, "xbmc.addon.metadata")
	}

	news := meta.FindElement("news")
	if news == nil {
		news = meta.CreateElement("news")
	}
	news.SetText(text)
	return nil
}

// Save writes the manifest back to the file it was loaded from.
func (m *Manifest) Save() error {
	if err := m.doc.WriteToFile(m.path); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
