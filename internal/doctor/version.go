package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if current < minimum, 0 if equal, 1 if current > minimum.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(current, minimum string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return 0, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return cv.Compare(mv), nil
}

// MinVersionSatisfied returns true if current is at least minimum.
func MinVersionSatisfied(current, minimum string) (bool, error) {
	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

var versionPattern = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// extractVersion pulls the first semver-looking token out of a CLI's
// --version output, which tends to be prose like
// "manus-mcp-cli version 1.4.0".
func extractVersion(output string) (string, bool) {
	v := versionPattern.FindString(output)
	return v, v != ""
}

// binaryVersion runs `<bin> --version` and extracts the reported version.
func binaryVersion(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	v, ok := extractVersion(string(out))
	if !ok {
		return "", fmt.Errorf("no version in output %q", strings.TrimSpace(string(out)))
	}
	return v, nil
}
