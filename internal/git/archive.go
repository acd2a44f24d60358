package git

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Archive writes a zip of the files tracked at HEAD. Entries are taken from
// the commit tree, not the worktree, so uncommitted changes never leak into
// a release artifact. A non-empty prefix is prepended to every entry name
// (conventionally the addon ID, so the zip extracts into one directory).
// When paths is non-empty, only files at or under those paths are included.
func (r *Repo) Archive(w io.Writer, prefix string, paths []string) error {
	hash, err := r.ResolveHead()
	if err != nil {
		return err
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return fmt.Errorf("resolving HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("resolving commit tree: %w", err)
	}

	zw := zip.NewWriter(w)
	err = tree.Files().ForEach(func(f *object.File) error {
		if !matchesAny(f.Name, paths) {
			return nil
		}
		return writeZipEntry(zw, f, prefix)
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("archiving tree: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing zip: %w", err)
	}
	return nil
}

// ArchiveToFile builds the zip at outPath, creating or truncating it.
func (r *Repo) ArchiveToFile(outPath, prefix string, paths []string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", outPath, err)
	}

	if err := r.Archive(out, prefix, paths); err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}

func writeZipEntry(zw *zip.Writer, f *object.File, prefix string) error {
	mode, err := f.Mode.ToOSFileMode()
	if err != nil {
		return fmt.Errorf("resolving mode for %s: %w", f.Name, err)
	}

	header := &zip.FileHeader{
		Name:   path.Join(prefix, f.Name),
		Method: zip.Deflate,
	}
	header.SetMode(mode)

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry %s: %w", f.Name, err)
	}

	reader, err := f.Reader()
	if err != nil {
		return fmt.Errorf("reading %s from tree: %w", f.Name, err)
	}
	defer reader.Close()

	if _, err := io.Copy(entry, reader); err != nil {
		return fmt.Errorf("writing zip entry %s: %w", f.Name, err)
	}
	return nil
}

// matchesAny reports whether name equals one of the paths or lives under
// one of them. An empty path list matches everything.
func matchesAny(name string, paths []string) bool {
	if len(paths) == 0 {
		return true
	}
	for _, p := range paths {
		p = strings.TrimSuffix(p, "/")
		if name == p || strings.HasPrefix(name, p+"/") {
			return true
		}
	}
	return false
}
