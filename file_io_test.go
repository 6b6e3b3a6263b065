package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"a/one.txt":         {Data: []byte("one\n")},
		"c/.keep":           {Data: nil},
		"b.txt":             {Data: []byte("hello\nworld\n"), Mode: 0o644},
		".hidden":           {Data: []byte("secret")},
		"apps/config.txt":   {Data: []byte("k=v\n")},
		"apps/tools/run.go": {Data: []byte("package main\n")},
		"bin.dat":           {Data: []byte{0xff, 0xfe, 0x00, 0x80}},
	}
}

func TestHostFS_ReadDir(t *testing.T) {
	h := NewHostFS(newTestFS())
	entries, err := h.ReadDir("/")
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	dirs := map[string]bool{}
	for _, e := range entries {
		dirs[e.Name] = e.IsDir
	}
	if !dirs["a"] || !dirs["apps"] || dirs["b.txt"] {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestHostFS_ReadDir_Errors(t *testing.T) {
	h := NewHostFS(newTestFS())
	if _, err := h.ReadDir("/missing"); !errors.Is(err, FS_ERR_NOT_FOUND) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := h.ReadDir("/b.txt"); !errors.Is(err, FS_ERR_NOT_DIR) {
		t.Fatalf("expected not a directory, got %v", err)
	}
}

func TestHostFS_OpenChunkedRead(t *testing.T) {
	h := NewHostFS(newTestFS())
	f, err := h.Open("/b.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var got []byte
	buf := make([]byte, 4)
	for {
		n, err := f.Read(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if string(got) != "hello\nworld\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestHostFS_OpenDirectory(t *testing.T) {
	h := NewHostFS(newTestFS())
	_, err := h.Open("/apps")
	var fe *FSError
	if !errors.As(err, &fe) || fe.Code != FS_ERR_IS_DIR {
		t.Fatalf("expected is-directory error, got %v", err)
	}
	if fsReason(err) != "E um diretorio" {
		t.Fatalf("unexpected reason %q", fsReason(err))
	}
}

func TestHostFS_Stat(t *testing.T) {
	h := NewHostFS(newTestFS())
	info, err := h.Stat("/b.txt")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Type != FILE_TYPE_REGULAR || info.Size != 12 || info.Mode != 0o644 {
		t.Fatalf("unexpected file info %+v", info)
	}
	dir, err := h.Stat("/apps")
	if err != nil || dir.Type != FILE_TYPE_DIR {
		t.Fatalf("expected directory, got %+v (%v)", dir, err)
	}
	root, err := h.Stat("/")
	if err != nil || root.Type != FILE_TYPE_DIR {
		t.Fatalf("expected root directory, got %+v (%v)", root, err)
	}
}

func TestHostFS_ChdirAndQueries(t *testing.T) {
	h := NewHostFS(newTestFS())
	if err := h.Chdir("/apps/tools"); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if cwd, _ := h.Getcwd(); cwd != "/apps/tools" {
		t.Fatalf("expected cwd /apps/tools, got %q", cwd)
	}
	if err := h.Chdir("/b.txt"); !errors.Is(err, FS_ERR_NOT_DIR) {
		t.Fatalf("expected not-dir error, got %v", err)
	}
	if cwd, _ := h.Getcwd(); cwd != "/apps/tools" {
		t.Fatalf("expected failed chdir to keep cwd, got %q", cwd)
	}
	if !h.Exists("/a/one.txt") || h.Exists("/nope") {
		t.Fatal("unexpected Exists result")
	}
	if !h.IsDir("/") || h.IsDir("/b.txt") {
		t.Fatal("unexpected IsDir result")
	}
}

func TestFSErrorCode_Reasons(t *testing.T) {
	want := map[FSErrorCode]string{
		FS_ERR_NOT_FOUND:       "Nao encontrado",
		FS_ERR_PERMISSION:      "Permissao negada",
		FS_ERR_IS_DIR:          "E um diretorio",
		FS_ERR_NOT_DIR:         "Nao e um diretorio",
		FS_ERR_NOT_IMPLEMENTED: "Nao implementado",
		FS_ERR_IO:              "Erro de E/S",
		FSErrorCode(99):        "Erro desconhecido",
	}
	for code, reason := range want {
		if got := code.Reason(); got != reason {
			t.Fatalf("code %d: expected %q, got %q", code, reason, got)
		}
	}
}

func TestFileType_String(t *testing.T) {
	if FILE_TYPE_SYMLINK.String() != "link simbolico" || FILE_TYPE_UNKNOWN.String() != "desconhecido" {
		t.Fatal("unexpected file type names")
	}
}

// newSymlinkRoot builds root/{inside.txt, esc -> outside} with
// outside/secret.txt next to it.
func newSymlinkRoot(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "root")
	outside := filepath.Join(base, "outside")
	for _, dir := range []string{root, outside} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("SECRET\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "inside.txt"), []byte("inside\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "esc")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	return root
}

func TestOpenHostRoot_ConfinesSymlinks(t *testing.T) {
	h, closeRoot, err := OpenHostRoot(newSymlinkRoot(t))
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	defer closeRoot()

	if f, err := h.Open("/inside.txt"); err != nil {
		t.Fatalf("expected file inside the root to open, got %v", err)
	} else {
		_ = f.Close()
	}
	if f, err := h.Open("/esc/secret.txt"); err == nil {
		_ = f.Close()
		t.Fatal("expected symlink out of the root to be refused")
	}
	if _, err := h.ReadDir("/esc"); err == nil {
		t.Fatal("expected listing through the symlink to fail")
	}

	ctx := NewShellContext(h)
	out := &outputRecorder{}
	cmdCat(out, ctx, []string{"/esc/secret.txt"})
	got := strings.Join(out.lines(), "\n")
	if strings.Contains(got, "SECRET") {
		t.Fatalf("cat leaked a file outside the root: %q", got)
	}
	if !strings.HasPrefix(got, "cat: /esc/secret.txt: ") || ctx.LastExitCode != EXIT_FAILURE {
		t.Fatalf("expected cat error line and exit 1, got %q exit %d", got, ctx.LastExitCode)
	}
}

func TestOpenHostRoot_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := OpenHostRoot(file); err == nil {
		t.Fatal("expected a plain file to be rejected as root")
	}
}
