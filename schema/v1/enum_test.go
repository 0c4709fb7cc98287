// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumSetMerge(t *testing.T) {
	merged := DefaultEnumSet().Merge(EnumSet{
		Views:     []string{"CLOSEUP", "Shocked"},
		Positions: []string{"center"},
	})

	assert.Equal(t, []string{"normal", "closeup", "left", "right", "shocked"}, merged.Views)
	assert.Equal(t, []string{"left", "right", "center"}, merged.Positions)
	assert.Equal(t, DefaultEnumSet().Parts, merged.Parts)

	assert.Equal(t, EnumSet{Views: []string{}, Positions: []string{}, Parts: []string{}}, EnumSet{}.Merge(EnumSet{}))
}

func TestContainsFold(t *testing.T) {
	known := []string{"eye_left", "mouth"}

	assert.True(t, containsFold(known, "EYE_LEFT"))
	assert.True(t, containsFold(known, "Mouth"))
	assert.False(t, containsFold(known, "eye"))
	assert.False(t, containsFold(nil, "mouth"))
}
