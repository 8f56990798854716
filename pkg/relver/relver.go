package relver

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
)

// EnvVar is the environment variable holding the target version.
const EnvVar = "VERSION"

// FormatHint describes the accepted version format.
const FormatHint = "majorVersion.minorVersion.buildVersion-qualifier"

var versionRegexp = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)-([a-zA-Z0-9]+)$`)

// Validate reports whether version is of the form MAJOR.MINOR.PATCH-QUALIFIER.
// The whole string must match.
func Validate(version string) bool {
	return versionRegexp.MatchString(version)
}

// Check returns an error wrapping [bumperrors.ErrInvalidVersion] when version
// does not pass [Validate].
func Check(version string) error {
	if !Validate(version) {
		return fmt.Errorf("%w: %q. The version should be in the format: %s",
			bumperrors.ErrInvalidVersion, version, FormatHint)
	}

	return nil
}

// Version is a parsed release version.
type Version struct {
	sv  *semver.Version
	raw string
}

// Parse validates and parses version. Versions that pass [Validate] can still
// fail to parse when a number does not fit in 64 bits.
func Parse(version string) (Version, error) {
	m := versionRegexp.FindStringSubmatch(version)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q, expected %s", bumperrors.ErrInvalidVersion, version, FormatHint)
	}

	segments := make([]uint64, 3)
	for i := range segments {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", bumperrors.ErrInvalidVersion, version, err)
		}

		segments[i] = n
	}

	return Version{
		sv:  semver.New(segments[0], segments[1], segments[2], m[4], ""),
		raw: version,
	}, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(version string) Version {
	v, err := Parse(version)
	if err != nil {
		panic(err)
	}

	return v
}

// FromEnv returns the target version from [EnvVar] using lookup, which is
// usually [os.LookupEnv]. The value is not validated.
func FromEnv(lookup func(string) (string, bool)) (string, error) {
	v, ok := lookup(EnvVar)
	if !ok || v == "" {
		return "", bumperrors.ErrMissingVersion
	}

	return v, nil
}

func (v Version) Major() uint64 {
	return v.sv.Major()
}

func (v Version) Minor() uint64 {
	return v.sv.Minor()
}

func (v Version) Patch() uint64 {
	return v.sv.Patch()
}

// Qualifier returns the token after the dash, e.g. "oss".
func (v Version) Qualifier() string {
	return v.sv.Prerelease()
}

// String returns the version exactly as it was parsed.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or 1 depending on whether v is lower than, equal to,
// or higher than o. Qualifiers are compared as semver pre-release identifiers.
func (v Version) Compare(o Version) int {
	return v.sv.Compare(o.sv)
}

// LessThan reports whether v sorts before o.
func (v Version) LessThan(o Version) bool {
	return v.Compare(o) < 0
}
