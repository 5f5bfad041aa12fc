package requirements

import (
	"strings"

	"bddreport/internal/narrative"
)

// StripSuffix removes a .story or .feature suffix and reports which one.
func StripSuffix(path string) (string, string) {
	for _, suffix := range []string{narrative.StorySuffix, narrative.FeatureSuffix} {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix), suffix
		}
	}
	return path, ""
}

// PathElements splits a story path into its elements. File separators
// take precedence; a path without any is split on dots.
func PathElements(path string) []string {
	path, _ = StripSuffix(strings.TrimSpace(path))
	if strings.ContainsAny(path, `/\`) {
		return splitPath(path)
	}
	return splitOn(path, ".")
}

func splitPath(path string) []string {
	return splitOn(strings.ReplaceAll(path, `\`, "/"), "/")
}

func splitOn(path, sep string) []string {
	elements := make([]string, 0)
	for _, part := range strings.Split(path, sep) {
		part = strings.TrimSpace(part)
		if part == "" || part == "." {
			continue
		}
		elements = append(elements, part)
	}
	return elements
}

// stripRoot drops the root directory from the front of elements. When the
// path does not start with the root, everything up to and including the
// root's last segment is dropped.
func stripRoot(elements, root []string) []string {
	if len(root) == 0 {
		return elements
	}
	if hasPrefix(elements, root) {
		return elements[len(root):]
	}
	last := root[len(root)-1]
	for i, element := range elements {
		if element == last {
			return elements[i+1:]
		}
	}
	return elements
}

func hasPrefix(elements, prefix []string) bool {
	if len(prefix) > len(elements) {
		return false
	}
	for i := range prefix {
		if elements[i] != prefix[i] {
			return false
		}
	}
	return true
}
