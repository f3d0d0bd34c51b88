package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Version is an immutable semantic version per the SemVer 2.0 grammar:
// MAJOR.MINOR.PATCH with optional dot-separated prerelease and build
// identifier lists. Values are constructed through NewVersion or
// NewVersionFromParts and never mutated; bump operations return new values.
type Version struct {
	major      uint64
	minor      uint64
	patch      uint64
	prerelease []string
	build      []string
}

// NewVersion parses a version string. The grammar is anchored to the whole
// input, and the parsed value must re-render to the exact input string; any
// violation yields a *MalformedVersionError.
func NewVersion(input string) (*Version, error) {
	rest := input
	var preRaw, buildRaw string
	var hasPre, hasBuild bool
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		rest, buildRaw = rest[:i], rest[i+1:]
		hasBuild = true
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		rest, preRaw = rest[:i], rest[i+1:]
		hasPre = true
	}
	core := strings.Split(rest, ".")
	if len(core) != 3 {
		return nil, &MalformedVersionError{Input: input, Reason: reasonTooFewComponents}
	}
	v := &Version{}
	for i, target := range []*uint64{&v.major, &v.minor, &v.patch} {
		n, err := parseNumericComponent(core[i])
		if err != nil {
			return nil, &MalformedVersionError{Input: input, Reason: reasonTooFewComponents}
		}
		*target = n
	}
	if hasPre {
		ids, err := parseIdentifiers(preRaw, true)
		if err != nil {
			return nil, &MalformedVersionError{Input: input, Reason: err.Error()}
		}
		v.prerelease = ids
	}
	if hasBuild {
		ids, err := parseIdentifiers(buildRaw, false)
		if err != nil {
			return nil, &MalformedVersionError{Input: input, Reason: err.Error()}
		}
		v.build = ids
	}
	// The tokenizer above is deliberately loose; re-rendering catches
	// anything it let through that the grammar forbids (stray whitespace,
	// leading zeros in core components, duplicate separators).
	if v.String() != input {
		return nil, &MalformedVersionError{Input: input, Reason: reasonRoundTrip}
	}
	return v, nil
}

// NewVersionFromParts builds a version from component values. The prerelease
// and build arguments are dot-separated identifier lists; empty means absent.
// Validation failures name the offending field.
func NewVersionFromParts(major, minor, patch uint64, prerelease, build string) (*Version, error) {
	v := &Version{major: major, minor: minor, patch: patch}
	if prerelease != "" {
		ids, err := parseIdentifiers(prerelease, true)
		if err != nil {
			return nil, &MalformedVersionError{Input: prerelease, Field: "prerelease", Reason: err.Error()}
		}
		v.prerelease = ids
	}
	if build != "" {
		ids, err := parseIdentifiers(build, false)
		if err != nil {
			return nil, &MalformedVersionError{Input: build, Field: "build", Reason: err.Error()}
		}
		v.build = ids
	}
	return v, nil
}

// Valid reports whether input parses as a semantic version.
func Valid(input string) bool {
	_, err := NewVersion(input)
	return err == nil
}

// Major returns the major component.
func (v *Version) Major() uint64 { return v.major }

// Minor returns the minor component.
func (v *Version) Minor() uint64 { return v.minor }

// Patch returns the patch component.
func (v *Version) Patch() uint64 { return v.patch }

// Prerelease returns the dot-joined prerelease identifiers, or "" when the
// version is a release.
func (v *Version) Prerelease() string { return strings.Join(v.prerelease, ".") }

// Metadata returns the dot-joined build identifiers, or "" when absent.
func (v *Version) Metadata() string { return strings.Join(v.build, ".") }

// IsPrerelease reports whether the version carries prerelease identifiers.
func (v *Version) IsPrerelease() bool { return len(v.prerelease) > 0 }

// String renders the canonical form MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
// It is the exact inverse of NewVersion for every constructible value.
func (v *Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	if len(v.prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.prerelease, "."))
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

// BumpMajor returns major+1 with minor and patch reset; prerelease and build
// are cleared.
func (v *Version) BumpMajor() *Version {
	return &Version{major: v.major + 1}
}

// BumpMinor returns minor+1 with patch reset; prerelease and build are
// cleared.
func (v *Version) BumpMinor() *Version {
	return &Version{major: v.major, minor: v.minor + 1}
}

// BumpPatch returns patch+1; prerelease and build are cleared.
func (v *Version) BumpPatch() *Version {
	return &Version{major: v.major, minor: v.minor, patch: v.patch + 1}
}

// Compare defines the SemVer total order, returning -1, 0 or 1. Major, minor
// and patch compare numerically; ties fall through to prerelease precedence.
// Build metadata is never consulted.
func (v *Version) Compare(other *Version) int {
	if c := compareUint64(v.major, other.major); c != 0 {
		return c
	}
	if c := compareUint64(v.minor, other.minor); c != 0 {
		return c
	}
	if c := compareUint64(v.patch, other.patch); c != 0 {
		return c
	}
	return comparePrerelease(v.prerelease, other.prerelease)
}

// Equal reports ordering equality: build metadata is ignored, so versions
// differing only in build metadata are Equal.
func (v *Version) Equal(other *Version) bool {
	return v.Compare(other) == 0
}

// Identical reports full value identity: ordering equality plus textually
// equal build metadata.
func (v *Version) Identical(other *Version) bool {
	return v.Equal(other) && v.Metadata() == other.Metadata()
}

// SortAscending returns a new slice holding the versions in ascending
// precedence order. The sort is stable, so versions that compare equal (for
// example, differing only in build metadata) keep their input order. The
// input slice is not modified.
func SortAscending(versions []*Version) []*Version {
	sorted := make([]*Version, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	return sorted
}

// MarshalJSON encodes the version as its canonical string.
func (v *Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes and validates a canonical version string.
func (v *Version) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewVersion(raw)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// parseNumericComponent parses a core MAJOR/MINOR/PATCH component. Leading
// zeros are tolerated here; the round-trip check in NewVersion rejects them.
func parseNumericComponent(s string) (uint64, error) {
	if s == "" || !isNumericIdentifier(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 10, 64)
}

// parseIdentifiers splits and validates a dot-separated identifier list. The
// returned error text is a reason string suitable for MalformedVersionError.
func parseIdentifiers(raw string, prerelease bool) ([]string, error) {
	ids := strings.Split(raw, ".")
	for _, id := range ids {
		if !isValidIdentifier(id) {
			if prerelease {
				return nil, errPrereleaseCharset
			}
			return nil, errBuildCharset
		}
		if prerelease && isNumericIdentifier(id) && len(id) > 1 && id[0] == '0' {
			return nil, errPrereleaseLeadingZero
		}
	}
	return ids, nil
}

// isValidIdentifier reports whether id is a non-empty run of ASCII letters,
// digits and hyphens.
func isValidIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// isNumericIdentifier reports whether id consists solely of ASCII digits.
func isNumericIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease implements prerelease precedence: a release outranks any
// prerelease of the same core version; otherwise identifier pairs compare
// left to right, and when one list is a strict prefix of the other the
// shorter list ranks lower.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifiers(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

// compareIdentifiers orders a single identifier pair: numeric identifiers
// compare as integers and always rank below alphanumeric ones; alphanumeric
// identifiers compare lexically by ASCII code point.
func compareIdentifiers(a, b string) int {
	aNum := isNumericIdentifier(a)
	bNum := isNumericIdentifier(b)
	switch {
	case aNum && bNum:
		// Numeric identifiers carry no leading zeros, so a longer digit
		// string is always the larger integer.
		if c := compareInt(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
