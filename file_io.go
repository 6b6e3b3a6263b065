package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FSErrorCode is the closed set of filesystem failures the shell reports.
type FSErrorCode int

const (
	FS_ERR_NOT_FOUND FSErrorCode = iota + 1
	FS_ERR_PERMISSION
	FS_ERR_IS_DIR
	FS_ERR_NOT_DIR
	FS_ERR_NOT_IMPLEMENTED
	FS_ERR_IO
)

// Reason returns the user-facing text for the code.
func (c FSErrorCode) Reason() string {
	switch c {
	case FS_ERR_NOT_FOUND:
		return "Nao encontrado"
	case FS_ERR_PERMISSION:
		return "Permissao negada"
	case FS_ERR_IS_DIR:
		return "E um diretorio"
	case FS_ERR_NOT_DIR:
		return "Nao e um diretorio"
	case FS_ERR_NOT_IMPLEMENTED:
		return "Nao implementado"
	case FS_ERR_IO:
		return "Erro de E/S"
	}
	return "Erro desconhecido"
}

// Error lets a bare code act as a sentinel for errors.Is.
func (c FSErrorCode) Error() string { return c.Reason() }

// FSError provides detailed error context for filesystem operations
type FSError struct {
	Op   string
	Path string
	Code FSErrorCode
	Err  error // Underlying error if any
}

func (e *FSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Code.Reason(), e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Code.Reason())
}

func (e *FSError) Unwrap() error { return e.Err }

func (e *FSError) Is(target error) bool {
	code, ok := target.(FSErrorCode)
	return ok && code == e.Code
}

// fsReason extracts the user-facing reason from any error.
func fsReason(err error) string {
	var fe *FSError
	if errors.As(err, &fe) {
		return fe.Code.Reason()
	}
	return classifyFSError(err).Reason()
}

func classifyFSError(err error) FSErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrInvalid):
		return FS_ERR_NOT_FOUND
	case errors.Is(err, fs.ErrPermission), isPathEscape(err):
		return FS_ERR_PERMISSION
	case errors.Is(err, errors.ErrUnsupported):
		return FS_ERR_NOT_IMPLEMENTED
	}
	return FS_ERR_IO
}

// isPathEscape matches the error os.Root returns for names that resolve
// outside the root, through ".." or a symlink.
func isPathEscape(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe) && pe.Err != nil && pe.Err.Error() == "path escapes from parent"
}

type FileType int

const (
	FILE_TYPE_UNKNOWN FileType = iota
	FILE_TYPE_REGULAR
	FILE_TYPE_DIR
	FILE_TYPE_SYMLINK
)

func (t FileType) String() string {
	switch t {
	case FILE_TYPE_REGULAR:
		return "arquivo regular"
	case FILE_TYPE_DIR:
		return "diretorio"
	case FILE_TYPE_SYMLINK:
		return "link simbolico"
	}
	return "desconhecido"
}

type FileInfo struct {
	Name string
	Type FileType
	Size uint64
	Mode uint32
}

type DirEntry struct {
	Name  string
	IsDir bool
}

// File is an open file read in chunks; Read returns 0, io.EOF at the end.
type File interface {
	io.Reader
	io.Closer
}

// FileSystem is the read-only filesystem the shell browses. Paths are
// absolute and already normalized.
type FileSystem interface {
	ReadDir(path string) ([]DirEntry, error)
	Open(path string) (File, error)
	Stat(path string) (FileInfo, error)
	Chdir(path string) error
	Getcwd() (string, error)
	Exists(path string) bool
	IsDir(path string) bool
}

// HostFS exposes an io/fs.FS (normally the os.Root of the configured directory)
// as the shell filesystem. "/" maps to the root of fsys.
type HostFS struct {
	fsys fs.FS
	cwd  string
}

func NewHostFS(fsys fs.FS) *HostFS {
	return &HostFS{fsys: fsys, cwd: "/"}
}

// OpenHostRoot exposes the host directory dir as the shell filesystem.
// Lookups are confined to dir: symlinks pointing outside it fail instead
// of being followed. The returned func closes the root.
func OpenHostRoot(dir string) (*HostFS, func() error, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, nil, err
	}
	return NewHostFS(root.FS()), root.Close, nil
}

// fsName converts an absolute shell path to an io/fs name.
func fsName(path string) string {
	name := strings.Trim(path, "/")
	if name == "" {
		return "."
	}
	return name
}

func (h *HostFS) wrap(op, path string, err error) error {
	return &FSError{Op: op, Path: path, Code: classifyFSError(err), Err: err}
}

func (h *HostFS) ReadDir(path string) ([]DirEntry, error) {
	info, err := fs.Stat(h.fsys, fsName(path))
	if err != nil {
		return nil, h.wrap("readdir", path, err)
	}
	if !info.IsDir() {
		return nil, &FSError{Op: "readdir", Path: path, Code: FS_ERR_NOT_DIR}
	}
	entries, err := fs.ReadDir(h.fsys, fsName(path))
	if err != nil {
		return nil, h.wrap("readdir", path, err)
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

func (h *HostFS) Open(path string) (File, error) {
	f, err := h.fsys.Open(fsName(path))
	if err != nil {
		return nil, h.wrap("open", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, h.wrap("open", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &FSError{Op: "open", Path: path, Code: FS_ERR_IS_DIR}
	}
	return &hostFile{f: f, path: path}, nil
}

func (h *HostFS) Stat(path string) (FileInfo, error) {
	name := fsName(path)
	var (
		info fs.FileInfo
		err  error
	)
	if rl, ok := h.fsys.(fs.ReadLinkFS); ok && name != "." {
		info, err = rl.Lstat(name)
	}
	if info == nil {
		info, err = fs.Stat(h.fsys, name)
	}
	if err != nil {
		return FileInfo{}, h.wrap("stat", path, err)
	}

	fi := FileInfo{
		Name: info.Name(),
		Mode: uint32(info.Mode().Perm()),
	}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		fi.Type = FILE_TYPE_SYMLINK
	case info.IsDir():
		fi.Type = FILE_TYPE_DIR
	case info.Mode().IsRegular():
		fi.Type = FILE_TYPE_REGULAR
		fi.Size = uint64(max(0, info.Size()))
	}
	return fi, nil
}

func (h *HostFS) Chdir(path string) error {
	info, err := fs.Stat(h.fsys, fsName(path))
	if err != nil {
		return h.wrap("chdir", path, err)
	}
	if !info.IsDir() {
		return &FSError{Op: "chdir", Path: path, Code: FS_ERR_NOT_DIR}
	}
	h.cwd = NormalizePath(path)
	return nil
}

func (h *HostFS) Getcwd() (string, error) {
	return h.cwd, nil
}

func (h *HostFS) Exists(path string) bool {
	_, err := fs.Stat(h.fsys, fsName(path))
	return err == nil
}

func (h *HostFS) IsDir(path string) bool {
	info, err := fs.Stat(h.fsys, fsName(path))
	return err == nil && info.IsDir()
}

type hostFile struct {
	f    fs.File
	path string
}

func (hf *hostFile) Read(p []byte) (int, error) {
	n, err := hf.f.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, &FSError{Op: "read", Path: hf.path, Code: classifyFSError(err), Err: err}
	}
	return n, err
}

func (hf *hostFile) Close() error {
	return hf.f.Close()
}
