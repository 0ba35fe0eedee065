// Package quality defines the output quality profiles applied during final
// assembly and their ghostscript argument mappings.
package quality

import (
	"fmt"
	"strings"
)

// Profile names a resolution/compression preset for the merged output.
type Profile string

const (
	// Default performs no downsampling or target-size optimization.
	Default Profile = "default"
	// Screen targets 72dpi-class output, the smallest files.
	Screen Profile = "screen"
	// Ebook targets 150dpi-class output, the documented default.
	Ebook Profile = "ebook"
	// Printer targets 300dpi-class output.
	Printer Profile = "printer"
	// Prepress targets 300dpi-class output and preserves color profiles.
	Prepress Profile = "prepress"
)

// All lists the profiles in ascending output-size order.
func All() []Profile {
	return []Profile{Screen, Ebook, Printer, Prepress, Default}
}

// Parse maps a flag or config string to a Profile.
func Parse(value string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(value))) {
	case Default:
		return Default, nil
	case Screen:
		return Screen, nil
	case Ebook:
		return Ebook, nil
	case Printer:
		return Printer, nil
	case Prepress:
		return Prepress, nil
	default:
		return "", fmt.Errorf("unknown quality profile %q", value)
	}
}

// GhostscriptArgs returns the pdfwrite arguments implementing the profile.
// Default returns no arguments: pages pass through without downsampling.
func (p Profile) GhostscriptArgs() []string {
	switch p {
	case Screen:
		return []string{"-dPDFSETTINGS=/screen"}
	case Ebook:
		return []string{"-dPDFSETTINGS=/ebook"}
	case Printer:
		return []string{"-dPDFSETTINGS=/printer"}
	case Prepress:
		return []string{"-dPDFSETTINGS=/prepress"}
	default:
		return nil
	}
}

// TargetDPI reports the downsampling class of the profile; zero means no
// downsampling.
func (p Profile) TargetDPI() int {
	switch p {
	case Screen:
		return 72
	case Ebook:
		return 150
	case Printer, Prepress:
		return 300
	default:
		return 0
	}
}

func (p Profile) String() string { return string(p) }
