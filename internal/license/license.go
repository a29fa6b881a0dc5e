// Package license is the fixed, ordered registry of licenses offered to the
// user. Position in the registry is the license identity.
package license

// License is a positional index into the registry.
type License int

const (
	None License = iota
	Apache
	BSD3Clause
	CreativeCommonsZero
	GPLv3
	MIT
	Mozilla
	Unlicense
)

// Unknown is returned by FromLabel for labels outside the registry.
const Unknown License = -1

type entry struct {
	label string
	badge string
}

var registry = [...]entry{
	None: {label: "No license"},
	Apache: {
		label: "Apache 2.0 License",
		badge: "[![License](https://img.shields.io/badge/License-Apache%202.0-blue.svg)](https://opensource.org/licenses/Apache-2.0)",
	},
	BSD3Clause: {
		label: "BSD 3-Clause License",
		badge: "[![License](https://img.shields.io/badge/License-BSD%203--Clause-blue.svg)](https://opensource.org/licenses/BSD-3-Clause)",
	},
	CreativeCommonsZero: {
		label: "Creative Commons Zero 1.0",
		badge: "[![License: CC0-1.0](https://img.shields.io/badge/License-CC0%201.0-lightgrey.svg)](http://creativecommons.org/publicdomain/zero/1.0/)",
	},
	GPLv3: {
		label: "GNU GPL v3",
		badge: "[![License: GPL v3](https://img.shields.io/badge/License-GPLv3-blue.svg)](https://www.gnu.org/licenses/gpl-3.0)",
	},
	MIT: {
		label: "The MIT License",
		badge: "[![License: MIT](https://img.shields.io/badge/License-MIT-yellow.svg)](https://opensource.org/licenses/MIT)",
	},
	Mozilla: {
		label: "Mozilla Public License 2.0",
		badge: "[![License: MPL 2.0](https://img.shields.io/badge/License-MPL%202.0-brightgreen.svg)](https://opensource.org/licenses/MPL-2.0)",
	},
	Unlicense: {
		label: "The Unlicense",
		badge: "[![License: Unlicense](https://img.shields.io/badge/license-Unlicense-blue.svg)](http://unlicense.org/)",
	},
}

// Count is the number of registry entries.
const Count = len(registry)

// Labels returns the display names in registry order.
func Labels() []string {
	labels := make([]string, 0, Count)
	for _, e := range registry {
		labels = append(labels, e.label)
	}
	return labels
}

// FromLabel returns the license whose label matches exactly, or Unknown.
func FromLabel(label string) License {
	for i, e := range registry {
		if e.label == label {
			return License(i)
		}
	}
	return Unknown
}

// Valid reports whether l is inside the registry.
func (l License) Valid() bool {
	return l >= 0 && int(l) < Count
}

// Label returns the display name, or "" when l is out of range.
func (l License) Label() string {
	if !l.Valid() {
		return ""
	}
	return registry[l].label
}

// Badge returns the Markdown image+link badge. None and out-of-range
// indexes yield an empty string.
func (l License) Badge() string {
	if !l.Valid() {
		return ""
	}
	return registry[l].badge
}

// Badge is a convenience wrapper for License(index).Badge().
func Badge(index int) string {
	return License(index).Badge()
}

// IsLicensed reports whether a stored license label names an actual license.
// Empty labels and the "No license" entry are unlicensed.
func IsLicensed(label string) bool {
	return label != "" && label != None.Label()
}
