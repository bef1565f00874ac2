package entities

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// ErrBadVersion is returned when a tag does not look like a version.
var ErrBadVersion = errors.New("bad version")

// tagPattern is anchored at the start only: anything may follow the first
// digit. Any Unicode decimal digit counts, not just ASCII.
var tagPattern = regexp.MustCompile(`^v?(\p{Nd}.*)`)

// Tag is a release identifier such as "v1.2.3" or "1.2.3".
//
// The raw form (with any "v") is what gets pinned in dependency
// declarations and forwarded to child invocations, while the numeric form
// is what the package version field receives.
type Tag struct {
	raw     string
	version string
}

// ParseTag validates raw and splits off the optional leading "v".
func ParseTag(raw string) (Tag, error) {
	match := tagPattern.FindStringSubmatch(raw)
	if match == nil {
		return Tag{}, fmt.Errorf("%w: %s", ErrBadVersion, raw)
	}
	return Tag{raw: raw, version: match[1]}, nil
}

// Raw returns the tag exactly as supplied.
func (t Tag) Raw() string {
	return t.raw
}

// Version returns the tag with at most one leading "v" removed.
func (t Tag) Version() string {
	return t.version
}

// IsCanonicalSemver reports whether the tag is a strict semantic version.
// Non-semver tags are still accepted; callers only use this for warnings.
func (t Tag) IsCanonicalSemver() bool {
	return semver.IsValid("v" + t.version)
}

func (t Tag) String() string {
	return t.raw
}
