package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwidmann/ringlog/internal/models"
)

func TestIntColumnRoundTrip(t *testing.T) {
	values := [4]int{25, 320, 390, 745}
	assert.Equal(t, "25,320,390,745", joinInts(values))
	assert.Equal(t, values, splitInts(joinInts(values)))
}

func TestSplitIntsTolerance(t *testing.T) {
	// Trailing commas and junk come back as zeroes, the way the
	// original read a hand-edited database.
	assert.Equal(t, [4]int{1, 2, 0, 0}, splitInts("1,2,"))
	assert.Equal(t, [4]int{5, 0, 7, 0}, splitInts("5,junk,7"))
	assert.Equal(t, [4]int{}, splitInts(""))
}

func TestHashtagColumnRoundTrip(t *testing.T) {
	tags := [3]string{models.HashtagUpperArms, models.HashtagChest, models.HashtagEmpty}
	assert.Equal(t, "Upper Arms,Chest,Empty", joinHashtags(tags))
	assert.Equal(t, tags, splitHashtags(joinHashtags(tags)))
}

func TestSplitHashtagsTolerance(t *testing.T) {
	empty := [3]string{models.HashtagEmpty, models.HashtagEmpty, models.HashtagEmpty}
	assert.Equal(t, empty, splitHashtags(""))
	assert.Equal(t, empty, splitHashtags("#NotATag"))

	// The prefixed form the original wrote is still readable.
	assert.Equal(t,
		[3]string{models.HashtagChest, models.HashtagEmpty, models.HashtagEmpty},
		splitHashtags("#Chest,#Empty,#Empty"))
}

func TestAllDefaultSkillsSurviveEncoding(t *testing.T) {
	for _, skill := range models.DefaultSkills() {
		assert.Equal(t, skill.Damage, splitInts(joinInts(skill.Damage)), skill.Name)
		assert.Equal(t, skill.Hashtags, splitHashtags(joinHashtags(skill.Hashtags)), skill.Name)
	}
}
