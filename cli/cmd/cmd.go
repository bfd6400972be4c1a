package cmd

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new [context.Context] containing the given
// [kong.Context].
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// kongContextFrom returns the [kong.Context] stored in ctx, or nil.
func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok {
		return nil
	}

	return ktx
}

// stdinSource is the positional argument spelling that selects stdin.
const stdinSource = "-"

type (
	sourceFiles struct {
		read     []io.Reader
		combined io.Reader
		hasStdin bool
	}

	// SourceFiles reads the concatenation of one or more source inputs as
	// a single program.
	SourceFiles interface {
		IsZero() bool
		Stdin() io.Reader
		io.Reader
		io.WriterTo
	}
)

// NewSourceFiles opens the given source paths for reading.
//
// Each path is opened at most once: paths are resolved through symlinks
// and compared by device and inode, so relative and absolute spellings of
// the same file collapse to a single reader. Every occurrence of "-" (and
// any path that resolves to the stdin device) selects stdin, which reads
// last so that piped input follows all named files. Paths that cannot be
// opened are skipped.
//
// Returns nil when no input could be opened at all.
func NewSourceFiles(sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	srcs.read = make([]io.Reader, 0, len(sources))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, stdinOK := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		reader, key, ok := openUniqueFile(src, seen)
		if !ok {
			continue
		}

		// A named path that resolves to the stdin device is stdin.
		if stdinOK && key == stdinKey {
			if closer, ok := reader.(io.Closer); ok {
				closer.Close()
			}

			continue
		}

		srcs.read = append(srcs.read, reader)
	}

	// Stdin may have entered seen spelled as "-" or as a named path that
	// resolves to the same device and inode.
	_, srcs.hasStdin = seen[stdinKey]

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// IsZero reports whether there are no source inputs at all.
func (s *sourceFiles) IsZero() bool {
	return len(s.read) == 0 && !s.hasStdin
}

// Stdin returns [os.Stdin] if stdin is among the sources, or nil.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return os.Stdin
	}

	return nil
}

// sources returns every input in evaluation order, stdin last, with a
// newline reader between adjacent inputs. Files need not end in a newline,
// and tokens must never fuse across an input boundary.
func (s *sourceFiles) sources() []io.Reader {
	all := s.read
	if s.hasStdin {
		all = append(all[:len(all):len(all)], os.Stdin)
	}

	seq := make([]io.Reader, 0, 2*len(all))

	for i, r := range all {
		if i > 0 {
			seq = append(seq, strings.NewReader("\n"))
		}

		seq = append(seq, r)
	}

	return seq
}

// Read implements [io.Reader] over the concatenation of all inputs. The
// combined reader is constructed once, on first use, so partially consumed
// inputs are never restarted.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	if s.combined == nil {
		s.combined = io.MultiReader(s.sources()...)
	}

	return s.combined.Read(p)
}

// WriteTo implements [io.WriterTo] by copying every remaining input to w.
func (s *sourceFiles) WriteTo(w io.Writer) (n int64, err error) {
	if s.combined == nil {
		s.combined = io.MultiReader(s.sources()...)
	}

	return io.Copy(w, s.combined)
}

// fileKey identifies a file by device and inode so that distinct spellings
// of one path are opened only once.
type fileKey struct {
	dev uint64
	ino uint64
}

// makeFileKey derives a fileKey from info, reporting false when the
// underlying stat type is unavailable.
func makeFileKey(info fs.FileInfo) (fileKey, bool) {
	if info == nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}

// openUniqueFile opens path for reading unless a file with the same
// identity was opened before. It records newly seen identities in seen.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, fileKey, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return nil, fileKey{}, false
	}

	key, keyed := makeFileKey(info)
	if keyed {
		if _, dup := seen[key]; dup {
			return nil, fileKey{}, false
		}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fileKey{}, false
	}

	if keyed {
		seen[key] = struct{}{}
	}

	return file, key, true
}
