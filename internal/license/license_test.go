package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		index    int
	}{
		{name: "none", index: 0, expected: ""},
		{
			name:     "apache",
			index:    1,
			expected: "[![License](https://img.shields.io/badge/License-Apache%202.0-blue.svg)](https://opensource.org/licenses/Apache-2.0)",
		},
		{
			name:     "bsd",
			index:    2,
			expected: "[![License](https://img.shields.io/badge/License-BSD%203--Clause-blue.svg)](https://opensource.org/licenses/BSD-3-Clause)",
		},
		{
			name:     "cc0",
			index:    3,
			expected: "[![License: CC0-1.0](https://img.shields.io/badge/License-CC0%201.0-lightgrey.svg)](http://creativecommons.org/publicdomain/zero/1.0/)",
		},
		{
			name:     "gpl",
			index:    4,
			expected: "[![License: GPL v3](https://img.shields.io/badge/License-GPLv3-blue.svg)](https://www.gnu.org/licenses/gpl-3.0)",
		},
		{
			name:     "mit",
			index:    5,
			expected: "[![License: MIT](https://img.shields.io/badge/License-MIT-yellow.svg)](https://opensource.org/licenses/MIT)",
		},
		{
			name:     "mozilla",
			index:    6,
			expected: "[![License: MPL 2.0](https://img.shields.io/badge/License-MPL%202.0-brightgreen.svg)](https://opensource.org/licenses/MPL-2.0)",
		},
		{
			name:     "unlicense",
			index:    7,
			expected: "[![License: Unlicense](https://img.shields.io/badge/license-Unlicense-blue.svg)](http://unlicense.org/)",
		},
		{name: "negative", index: -1, expected: ""},
		{name: "past end", index: 8, expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Badge(tt.index))
		})
	}
}

func TestLabelsOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"No license",
		"Apache 2.0 License",
		"BSD 3-Clause License",
		"Creative Commons Zero 1.0",
		"GNU GPL v3",
		"The MIT License",
		"Mozilla Public License 2.0",
		"The Unlicense",
	}, Labels())
	assert.Equal(t, 8, Count)
}

func TestFromLabel(t *testing.T) {
	t.Parallel()

	for i, label := range Labels() {
		assert.Equal(t, License(i), FromLabel(label), label)
	}
	assert.Equal(t, Unknown, FromLabel("WTFPL"))
	assert.Equal(t, Unknown, FromLabel(""))
	assert.Empty(t, FromLabel("WTFPL").Badge())
	assert.Empty(t, Unknown.Label())
}

func TestIsLicensed(t *testing.T) {
	t.Parallel()

	assert.False(t, IsLicensed(""))
	assert.False(t, IsLicensed("No license"))
	assert.True(t, IsLicensed("The MIT License"))
	assert.True(t, IsLicensed("something custom"))
}
