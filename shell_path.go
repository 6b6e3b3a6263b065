package main

import "strings"

// ResolvePath makes path absolute against cwd and normalizes it.
func ResolvePath(cwd, path string) string {
	if strings.HasPrefix(path, "/") {
		return NormalizePath(path)
	}
	return NormalizePath(strings.TrimRight(cwd, "/") + "/" + path)
}

// NormalizePath drops empty and "." segments and applies ".." by popping
// the previous segment. ".." at the root is a no-op. The result always
// starts with "/" and normalizing it again returns it unchanged.
func NormalizePath(path string) string {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, seg)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// JoinPath appends child to an absolute base path.
func JoinPath(base, child string) string {
	return strings.TrimRight(base, "/") + "/" + child
}
