// Package filestore keeps uploaded document files on a filesystem.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

// FileInfo describes a stored file.
type FileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// Store saves files under a root directory. Refs are slash-separated paths
// relative to the root, e.g. "documents/<uuid>/report.pdf".
type Store struct {
	fs      afero.Fs
	baseURL string
}

// New creates a Store rooted at dir on the OS filesystem.
func New(dir, publicBaseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: create root: %w", err)
	}
	return NewWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir), publicBaseURL), nil
}

// NewWithFs creates a Store on top of an arbitrary afero filesystem.
func NewWithFs(fsys afero.Fs, publicBaseURL string) *Store {
	return &Store{fs: fsys, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Save writes r under a fresh ref derived from name and returns the ref.
// The file appears atomically: it is written to a temp file and renamed.
func (s *Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	base := sanitizeName(name)
	dir := path.Join("documents", uuid.NewString())
	ref := path.Join(dir, base)

	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("filestore: create dir: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("filestore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, &ctxReader{ctx: ctx, r: r})
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: write %s: %w", ref, err)
	}

	if err := s.fs.Rename(tmpName, ref); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: commit %s: %w", ref, err)
	}
	return ref, nil
}

// Stat returns metadata of a stored file. Unknown refs yield domain.ErrNotFound.
func (s *Store) Stat(_ context.Context, ref string) (FileInfo, error) {
	clean, err := cleanRef(ref)
	if err != nil {
		return FileInfo{}, err
	}

	fi, err := s.fs.Stat(clean)
	if err != nil {
		return FileInfo{}, mapFsError(err, ref)
	}
	if fi.IsDir() {
		return FileInfo{}, fmt.Errorf("file %q: %w", ref, domain.ErrNotFound)
	}

	return FileInfo{
		Name:     fi.Name(),
		Size:     fi.Size(),
		MimeType: mimeType(fi.Name()),
	}, nil
}

// Open returns a reader over a stored file. The caller closes it.
func (s *Store) Open(_ context.Context, ref string) (afero.File, error) {
	clean, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.Open(clean)
	if err != nil {
		return nil, mapFsError(err, ref)
	}
	return f, nil
}

// Remove deletes a stored file and its ref directory. Removing an unknown
// ref is not an error.
func (s *Store) Remove(_ context.Context, ref string) error {
	clean, err := cleanRef(ref)
	if err != nil {
		return err
	}

	dir := path.Dir(clean)
	if !strings.HasPrefix(dir, "documents/") {
		return fmt.Errorf("file %q: %w", ref, domain.ErrNotFound)
	}
	if err := s.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("filestore: remove %s: %w", ref, err)
	}
	return nil
}

// URL returns the public address of a stored file, or "" when no public
// base URL is configured.
func (s *Store) URL(ref string) string {
	if s.baseURL == "" || ref == "" {
		return ""
	}
	segments := strings.Split(ref, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/")
}

func mapFsError(err error, ref string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file %q: %w", ref, domain.ErrNotFound)
	}
	return fmt.Errorf("filestore: %s: %w", ref, err)
}

// cleanRef rejects refs escaping the store root.
func cleanRef(ref string) (string, error) {
	clean := path.Clean("/" + ref)[1:]
	if clean == "" || clean != strings.TrimPrefix(ref, "/") {
		return "", fmt.Errorf("file %q: %w", ref, domain.ErrNotFound)
	}
	return clean, nil
}

// sanitizeName keeps the base name of an uploaded file and replaces
// characters that are unsafe in paths.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	base = strings.Map(func(r rune) rune {
		if r < ' ' {
			return '_'
		}
		return r
	}, base)
	if base == "" || base == "." || base == ".." || base == "/" {
		return "file"
	}
	return base
}

func mimeType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
