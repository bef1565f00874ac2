package entities

import (
	"fmt"
	"strings"
)

const (
	// DefaultManifestName is the manifest file operated on in each package directory.
	DefaultManifestName = "Cargo.toml"
	// DefaultGitURL is the source repository whose crates get pinned.
	DefaultGitURL = "https://github.com/radixdlt/radixdlt-scrypto"
)

// DefaultPinnedDependencies returns the crate names pinned by default.
func DefaultPinnedDependencies() []string {
	return []string{"scrypto", "sbor", "radix-engine"}
}

// PinRule describes which dependency declarations receive the new tag.
type PinRule struct {
	Names  []string
	GitURL string
}

// Prefixes returns the literal line prefixes recognised by the rule, in name order.
func (r PinRule) Prefixes() []string {
	prefixes := make([]string, 0, len(r.Names))
	for _, name := range r.Names {
		prefixes = append(prefixes, fmt.Sprintf(`%s = { git = "%s"`, name, r.GitURL))
	}
	return prefixes
}

// Pin records a single rewritten dependency line.
type Pin struct {
	Name    string
	Line    int // 1-based
	OldLine string
	NewLine string
}

// ManifestInfo is the package identity declared by a manifest.
type ManifestInfo struct {
	Name    string
	Version string
}

// RewriteLines pins every dependency line matched by rule to tag.
//
// Each line is trimmed. The first matching prefix wins, and the line becomes
// that prefix followed by `, tag = "<raw tag>" }`; anything that used to
// follow the prefix is dropped, so running twice yields the same output.
// Lines that match nothing are returned trimmed but otherwise unchanged.
func RewriteLines(lines []string, rule PinRule, tag Tag) ([]string, []Pin) {
	prefixes := rule.Prefixes()
	result := make([]string, 0, len(lines))
	var pins []Pin

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for j, prefix := range prefixes {
			if strings.HasPrefix(trimmed, prefix) {
				rewritten := prefix + fmt.Sprintf(`, tag = "%s" }`, tag.Raw())
				pins = append(pins, Pin{
					Name:    rule.Names[j],
					Line:    i + 1,
					OldLine: trimmed,
					NewLine: rewritten,
				})
				trimmed = rewritten
				break
			}
		}
		result = append(result, trimmed)
	}

	return result, pins
}

// SplitLines breaks content into lines without their terminators.
// "\r\n", "\r" and "\n" all end a line, and a trailing terminator does not
// produce an extra empty line.
func SplitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i])
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		content = content[i+1:]
	}
	return lines
}

// JoinLines terminates every line with a single "\n".
func JoinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
