package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Bytes read from a file head for language detection
const STAT_SNIFF_BYTES = 8 * 1024

func fsCommands() []*Command {
	readOnly := func(name string, aliases []string, usage, summary string) *Command {
		return &Command{
			Name:     name,
			Aliases:  aliases,
			Group:    GROUP_FILES,
			Summary:  summary,
			Usage:    usage,
			Requires: CapWritableFS,
			Reason:   ReadOnlyFSNotice,
		}
	}
	return []*Command{
		{
			Name:    "ls",
			Aliases: []string{"dir"},
			Group:   GROUP_FILES,
			Summary: "Lista arquivos e diretorios",
			Usage:   "ls [opcoes] [caminho]",
			Help: []string{
				"OPCOES:",
				"  -l         Lista detalhada",
				"  -a         Mostra arquivos ocultos",
				"  --json     Saida em JSON",
				"",
				"EXEMPLOS:",
				"  ls",
				"  ls /apps",
				"  ls -l /system",
			},
			Run: cmdLs,
		},
		{
			Name:    "cd",
			Group:   GROUP_FILES,
			Summary: "Muda diretorio atual",
			Usage:   "cd <caminho>",
			Help: []string{
				"EXEMPLOS:",
				"  cd /apps",
				"  cd ..",
				"  cd /",
			},
			Run: cmdCd,
		},
		{
			Name:    "pwd",
			Group:   GROUP_FILES,
			Summary: "Mostra diretorio atual",
			Usage:   "pwd",
			Run:     cmdPwd,
		},
		{
			Name:    "cat",
			Aliases: []string{"type"},
			Group:   GROUP_FILES,
			Summary: "Mostra conteudo de arquivo",
			Usage:   "cat <arquivo>",
			Help: []string{
				"EXEMPLOS:",
				"  cat /apps/config.txt",
			},
			MinArgs: 1,
			Missing: "falta operando arquivo",
			Run:     cmdCat,
		},
		{
			Name:    "tree",
			Group:   GROUP_FILES,
			Summary: "Mostra arvore de diretorios",
			Usage:   "tree [caminho] [opcoes]",
			Help: []string{
				"OPCOES:",
				"  -d <n>     Profundidade maxima",
				"",
				"EXEMPLOS:",
				"  tree",
				"  tree /system",
				"  tree / -d 2",
			},
			Run: cmdTree,
		},
		{
			Name:    "stat",
			Group:   GROUP_FILES,
			Summary: "Mostra informacoes de arquivo",
			Usage:   "stat <caminho>",
			MinArgs: 1,
			Missing: "falta operando",
			Run:     cmdStat,
		},
		readOnly("mkdir", nil, "mkdir <caminho>", "Cria diretorio"),
		readOnly("rmdir", nil, "rmdir <caminho>", "Remove diretorio vazio"),
		readOnly("rm", []string{"del"}, "rm <arquivo>", "Remove arquivo"),
		readOnly("cp", []string{"copy"}, "cp <origem> <destino>", "Copia arquivo"),
		readOnly("mv", []string{"move", "rename"}, "mv <origem> <destino>", "Move/renomeia arquivo"),
	}
}

// sortEntries orders directories first, then names byte-wise.
func sortEntries(entries []DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
}

func displayName(e DirEntry) string {
	if e.IsDir {
		return "[" + e.Name + "]"
	}
	return e.Name
}

type lsEntryJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size uint64 `json:"size"`
}

func cmdLs(out Output, ctx *ShellContext, args []string) CommandResult {
	var long, all, asJSON bool
	target := ctx.Cwd
	for _, arg := range args {
		switch arg {
		case "-l":
			long = true
		case "-a":
			all = true
		case "-la", "-al":
			long, all = true, true
		case "--json":
			asJSON = true
		default:
			if strings.HasPrefix(arg, "-") {
				failLine(out, ctx, "ls", "opcao desconhecida", arg)
				return ResultOK
			}
			target = arg
		}
	}

	full := ctx.Resolve(target)
	entries, err := ctx.FS.ReadDir(full)
	if err != nil {
		failLine(out, ctx, "ls", full, fsReason(err))
		return ResultOK
	}
	if !all {
		entries = slices.DeleteFunc(entries, func(e DirEntry) bool {
			return strings.HasPrefix(e.Name, ".")
		})
	}
	sortEntries(entries)

	switch {
	case asJSON:
		return writeLsJSON(out, ctx, full, entries)
	case len(entries) == 0:
		out.WriteLine("(diretorio vazio)")
	case long:
		out.WriteLine("TIPO  TAMANHO  NOME")
		out.WriteLine("----  -------  ----")
		for _, e := range entries {
			kind, size := "FILE", "-"
			if e.IsDir {
				kind = "DIR "
			} else if info, err := ctx.FS.Stat(JoinPath(full, e.Name)); err == nil {
				size = strconv.FormatUint(info.Size, 10)
			}
			out.WriteLine(fmt.Sprintf("%s  %7s  %s", kind, size, displayName(e)))
		}
	default:
		writeLsColumns(out, entries)
	}
	return ResultOK
}

// writeLsColumns prints names separated by two spaces, breaking the line
// before it would pass LS_WRAP_COLUMN.
func writeLsColumns(out Output, entries []DirEntry) {
	width := 0
	for _, e := range entries {
		name := displayName(e)
		n := utf8.RuneCountInString(name)
		if width > 0 && width+n+2 > LS_WRAP_COLUMN {
			out.WriteLine("")
			width = 0
		}
		if width > 0 {
			out.WriteString("  ")
			width += 2
		}
		out.WriteString(name)
		width += n
	}
	out.WriteLine("")
}

func writeLsJSON(out Output, ctx *ShellContext, dir string, entries []DirEntry) CommandResult {
	list := make([]lsEntryJSON, 0, len(entries))
	for _, e := range entries {
		item := lsEntryJSON{Name: e.Name, Type: "file"}
		if e.IsDir {
			item.Type = "dir"
		} else if info, err := ctx.FS.Stat(JoinPath(dir, e.Name)); err == nil {
			item.Size = info.Size
		}
		list = append(list, item)
	}
	data, err := json.Marshal(list)
	if err != nil {
		return ResultError(fmt.Sprintf("ls: %v", err))
	}
	out.WriteLine(string(data))
	return ResultOK
}

func cmdCd(out Output, ctx *ShellContext, args []string) CommandResult {
	target := "/"
	if len(args) > 0 {
		target = args[0]
	}
	full := ctx.Resolve(target)

	switch {
	case !ctx.FS.Exists(full):
		failLine(out, ctx, "cd", full, "Nao existe")
	case !ctx.FS.IsDir(full):
		failLine(out, ctx, "cd", full, FS_ERR_NOT_DIR.Reason())
	default:
		if err := ctx.FS.Chdir(full); err != nil {
			failLine(out, ctx, "cd", full, fsReason(err))
			return ResultOK
		}
		ctx.SetCwd(full)
	}
	return ResultOK
}

func cmdPwd(out Output, ctx *ShellContext, _ []string) CommandResult {
	if cwd, err := ctx.FS.Getcwd(); err == nil && cwd != "" {
		out.WriteLine(cwd)
		return ResultOK
	}
	out.WriteLine(ctx.Cwd)
	return ResultOK
}

func cmdCat(out Output, ctx *ShellContext, args []string) CommandResult {
	for _, arg := range args {
		full := ctx.Resolve(arg)
		f, err := ctx.FS.Open(full)
		if err != nil {
			failLine(out, ctx, "cat", full, fsReason(err))
			continue
		}
		catFile(out, ctx, f)
		_ = f.Close()
	}
	return ResultOK
}

// catFile copies r to out in CAT_CHUNK_SIZE reads. A rune split across two
// reads is carried over; an invalid UTF-8 sequence stops the copy.
func catFile(out Output, ctx *ShellContext, r io.Reader) {
	var (
		buf       = make([]byte, CAT_CHUNK_SIZE)
		carry     []byte
		lineStart = true
	)
	endLine := func() {
		if !lineStart {
			out.WriteChar('\n')
			lineStart = true
		}
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := append(carry, buf[:n]...)
			i := 0
			for i < len(data) {
				ch, size := utf8.DecodeRune(data[i:])
				if ch == utf8.RuneError && size <= 1 {
					if !utf8.FullRune(data[i:]) {
						break
					}
					endLine()
					out.WriteLine("(conteudo binario nao exibido)")
					return
				}
				i += size
				switch {
				case ch == '\n':
					out.WriteChar('\n')
					lineStart = true
				case ch == '\t':
					out.WriteChar(' ')
					lineStart = false
				case ch >= ' ' && ch != 0x7F:
					out.WriteChar(ch)
					lineStart = false
				}
			}
			carry = append([]byte(nil), data[i:]...)
		}

		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			endLine()
			if len(carry) > 0 {
				out.WriteLine("(conteudo binario nao exibido)")
			}
			return
		}
		if err != nil {
			endLine()
			failLine(out, ctx, "cat", "erro ao ler", fsReason(err))
			return
		}
	}
}

func cmdTree(out Output, ctx *ShellContext, args []string) CommandResult {
	target := ctx.Cwd
	depth := TREE_DEFAULT_DEPTH
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "-d":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil && d >= 0 {
					depth = d
				}
				i++
			}
		case !strings.HasPrefix(arg, "-"):
			target = arg
		}
	}

	full := ctx.Resolve(target)
	entries, err := ctx.FS.ReadDir(full)
	if err != nil {
		failLine(out, ctx, "tree", full, fsReason(err))
		return ResultOK
	}
	out.WriteLine(full)
	treeWalk(out, ctx.FS, full, entries, "", 0, depth)
	return ResultOK
}

func treeWalk(out Output, fsys FileSystem, dir string, entries []DirEntry, prefix string, depth, maxDepth int) {
	if depth >= maxDepth {
		return
	}
	slices.SortFunc(entries, func(a, b DirEntry) int {
		return strings.Compare(a.Name, b.Name)
	})

	for i, e := range entries {
		last := i == len(entries)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}
		out.WriteLine(prefix + connector + displayName(e))
		if !e.IsDir {
			continue
		}
		child := JoinPath(dir, e.Name)
		sub, err := fsys.ReadDir(child)
		if err != nil {
			continue
		}
		treeWalk(out, fsys, child, sub, childPrefix, depth+1, maxDepth)
	}
}

func cmdStat(out Output, ctx *ShellContext, args []string) CommandResult {
	for _, arg := range args {
		full := ctx.Resolve(arg)
		info, err := ctx.FS.Stat(full)
		if err != nil {
			failLine(out, ctx, "stat", full, fsReason(err))
			continue
		}
		out.WriteLine("  Arquivo: " + full)
		out.WriteLine("     Tipo: " + info.Type.String())
		out.WriteLine(fmt.Sprintf("  Tamanho: %d bytes", info.Size))
		out.WriteLine(fmt.Sprintf("     Mode: %04o", info.Mode))
		if info.Type == FILE_TYPE_REGULAR {
			if lang := detectLanguage(ctx.FS, full); lang != "" {
				out.WriteLine("Linguagem: " + lang)
			}
		}
	}
	return ResultOK
}

// detectLanguage names the language of a file from its name and head.
// Binary files and unknown languages yield "".
func detectLanguage(fsys FileSystem, full string) string {
	f, err := fsys.Open(full)
	if err != nil {
		return ""
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, STAT_SNIFF_BYTES))
	if err != nil || enry.IsBinary(head) {
		return ""
	}
	return enry.GetLanguage(path.Base(full), head)
}
