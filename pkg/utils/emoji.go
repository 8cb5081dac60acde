package utils

import "unicode"

// Unicode blocks that cover the pictographic characters we accept as workout
// type icons. regexp can't match \p{Extended_Pictographic}, so the relevant
// ranges are spelled out.
var emojiRanges = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},   // misc symbols, dingbats
		{Lo: 0x1F000, Hi: 0x1F02F, Stride: 1}, // mahjong tiles
		{Lo: 0x1F0A0, Hi: 0x1F0FF, Stride: 1}, // playing cards
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // symbols and pictographs extended
	},
}

// IsEmoji reports whether the string contains at least one emoji rune.
func IsEmoji(s string) bool {
	for _, r := range s {
		if unicode.Is(emojiRanges, r) {
			return true
		}
	}
	return false
}
