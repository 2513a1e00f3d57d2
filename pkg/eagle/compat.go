package eagle

import (
	vlib "github.com/mcuadros/go-version"
)

// CompareVersions returns -1, 0 or 1 as version a is older than, equal to
// or newer than b
func CompareVersions(a, b string) int {
	return vlib.CompareSimple(a, b)
}

// IsNewerThan reports whether the file was written by an Eagle newer than version
func (d *Document) IsNewerThan(version string) bool {
	return CompareVersions(d.Version, version) == 1
}

// IsSupported reports whether the file's version does not exceed the DTD
// version this package models
func (d *Document) IsSupported() bool {
	return !d.IsNewerThan(EagleVersion)
}
