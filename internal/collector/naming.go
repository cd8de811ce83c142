package collector

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
}

const defaultExtension = ".png"

// InferExtension returns the lowercase image extension of rawURL's path, or
// .png when the path carries no known image extension.
func InferExtension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultExtension
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if imageExtensions[ext] {
		return ext
	}
	return defaultExtension
}

// Slugify lowercases text, keeps letters and digits, maps separators to
// single dashes and drops everything else. Empty results become "style".
func Slugify(text string) string {
	text = norm.NFC.String(strings.ToLower(strings.TrimSpace(text)))
	var b strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ' || r == '.':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	if out == "" {
		return "style"
	}
	return out
}

// FileName builds "<NN>-<slug>-<MM><ext>" for the imageIndex-th result of the
// taskIndex-th task. Both indexes are 1-based.
func FileName(taskIndex int, styleKey string, imageIndex int, sourceURL string) string {
	return fmt.Sprintf("%02d-%s-%02d%s", taskIndex, Slugify(styleKey), imageIndex, InferExtension(sourceURL))
}
