package models

import (
	"fmt"
	"strings"
)

// Hashtags describe which muscle groups a skill works. A skill carries
// up to three of them, unused slots hold HashtagEmpty.
const (
	HashtagEmpty       = "Empty"
	HashtagChest       = "Chest"
	HashtagUpperArms   = "Upper Arms"
	HashtagShoulders   = "Shoulders"
	HashtagTrapezius   = "Trapezius"
	HashtagCore        = "Core"
	HashtagPosture     = "Posture"
	HashtagLegs        = "Legs"
	HashtagGlutes      = "Glutes"
	HashtagLowerBody   = "Lower Body"
	HashtagAbs         = "Abs"
	HashtagWaist       = "Waist"
	HashtagStamina     = "Stamina"
	HashtagBack        = "Back"
	HashtagFlexibility = "Flexibility"
	HashtagAerobic     = "Aerobic"
)

// AllHashtags lists every hashtag found in game, HashtagEmpty included.
func AllHashtags() []string {
	return []string{
		HashtagEmpty,
		HashtagChest,
		HashtagUpperArms,
		HashtagShoulders,
		HashtagTrapezius,
		HashtagCore,
		HashtagPosture,
		HashtagLegs,
		HashtagGlutes,
		HashtagLowerBody,
		HashtagAbs,
		HashtagWaist,
		HashtagStamina,
		HashtagBack,
		HashtagFlexibility,
		HashtagAerobic,
	}
}

// ParseHashtag accepts the canonical name with or without the leading
// "#". The empty string parses to HashtagEmpty.
func ParseHashtag(s string) (string, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if trimmed == "" {
		return HashtagEmpty, nil
	}
	for _, h := range AllHashtags() {
		if trimmed == h {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown hashtag %q", s)
}

// HashtagDisplay renders a hashtag the way the game shows it.
// HashtagEmpty renders as nothing.
func HashtagDisplay(h string) string {
	if h == HashtagEmpty {
		return ""
	}
	return "#" + h
}

// HashtagTranslationKey builds the lookup key for the hashtag's display
// name, e.g. "Upper Arms" -> "hashtag_upper_arms".
func HashtagTranslationKey(h string) string {
	key := strings.ToLower(h)
	key = strings.ReplaceAll(key, " ", "_")
	return "hashtag_" + key
}
