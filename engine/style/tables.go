package style

import (
	"unicode"

	"github.com/npillmayer/stylize/engine/codepoint"
)

// Start of the contiguous runs in the Mathematical Alphanumeric Symbols
// block and in other blocks. Letter runs hold 26 code-points for A–Z or
// a–z, digit runs 10 code-points for 0–9.
const (
	boldUpper, boldLower, boldDigit                   = 0x1D400, 0x1D41A, 0x1D7CE
	italicUpper, italicLower                          = 0x1D434, 0x1D44E
	boldItalicUpper, boldItalicLower                  = 0x1D468, 0x1D482
	scriptUpper, scriptLower                          = 0x1D49C, 0x1D4B6
	boldScriptUpper, boldScriptLower                  = 0x1D4D0, 0x1D4EA
	frakturUpper, frakturLower                        = 0x1D504, 0x1D51E
	doubleStruckUpper, doubleStruckLower, doubleDigit = 0x1D538, 0x1D552, 0x1D7D8
	boldFrakturUpper, boldFrakturLower                = 0x1D56C, 0x1D586
	sansUpper, sansLower, sansDigit                   = 0x1D5A0, 0x1D5BA, 0x1D7E2
	sansBoldUpper, sansBoldLower, sansBoldDigit       = 0x1D5D4, 0x1D5EE, 0x1D7EC
	sansItalicUpper, sansItalicLower                  = 0x1D608, 0x1D622
	sansBoldItalicUpper, sansBoldItalicLower          = 0x1D63C, 0x1D656
	monoUpper, monoLower, monoDigit                   = 0x1D670, 0x1D68A, 0x1D7F6
	circledUpper, circledLower, circledDigit1         = 0x24B6, 0x24D0, 0x2460
	negCircledUpper, negCircledDigit1                 = 0x1F150, 0x2776
	squaredUpper, negSquaredUpper                     = 0x1F130, 0x1F170
	parenLower, parenDigit1                           = 0x249C, 0x2474
	fullwidthUpper, fullwidthLower, fullwidthDigit    = 0xFF21, 0xFF41, 0xFF10
	regionalIndicatorA                                = 0x1F1E6
)

// cuteSymbols decorate the "cute" style.
var cuteSymbols = []string{"✧", "♡", "✿", "❀", "⊹", "˚", "✩", "★", "☆"}

func letters(upper, lower rune) *codepoint.Builder {
	return codepoint.NewBuilder().Run('A', upper, 26).Run('a', lower, 26)
}

// --- Serif and sans-serif ---------------------------------------------------

func serifNormalMap() codepoint.Map {
	return codepoint.NewBuilder().Identity('a', 26).Identity('A', 26).Identity('0', 10).Map()
}

func serifBoldMap() codepoint.Map {
	return letters(boldUpper, boldLower).Run('0', boldDigit, 10).Map()
}

// Italic small h was encoded as PLANCK CONSTANT before the italic run.
func serifItalicMap() codepoint.Map {
	return letters(italicUpper, italicLower).Put('h', "\u210E").Map()
}

func serifBoldItalicMap() codepoint.Map {
	return letters(boldItalicUpper, boldItalicLower).Map()
}

func sansMap() codepoint.Map {
	return letters(sansUpper, sansLower).Run('0', sansDigit, 10).Map()
}

func sansBoldMap() codepoint.Map {
	return letters(sansBoldUpper, sansBoldLower).Run('0', sansBoldDigit, 10).Map()
}

func sansItalicMap() codepoint.Map {
	return letters(sansItalicUpper, sansItalicLower).Map()
}

func sansBoldItalicMap() codepoint.Map {
	return letters(sansBoldItalicUpper, sansBoldItalicLower).Map()
}

// --- Script and fraktur -----------------------------------------------------

// Script letters have eleven holes, filled from the Letterlike Symbols block.
func scriptMap() codepoint.Map {
	return letters(scriptUpper, scriptLower).
		Put('B', "\u212C").Put('E', "\u2130").Put('F', "\u2131").Put('H', "\u210B").
		Put('I', "\u2110").Put('L', "\u2112").Put('M', "\u2133").Put('R', "\u211B").
		Put('e', "\u212F").Put('g', "\u210A").Put('o', "\u2134").
		Map()
}

func boldScriptMap() codepoint.Map {
	return letters(boldScriptUpper, boldScriptLower).Map()
}

func frakturMap() codepoint.Map {
	return letters(frakturUpper, frakturLower).
		Put('C', "\u212D").Put('H', "\u210C").Put('I', "\u2111").Put('R', "\u211C").
		Put('Z', "\u2128").
		Map()
}

func boldFrakturMap() codepoint.Map {
	return letters(boldFrakturUpper, boldFrakturLower).Map()
}

// --- Monospace, double-struck, math ----------------------------------------

func monospaceMap() codepoint.Map {
	return letters(monoUpper, monoLower).Run('0', monoDigit, 10).Map()
}

func doubleStruckMap() codepoint.Map {
	return letters(doubleStruckUpper, doubleStruckLower).
		Put('C', "\u2102").Put('H', "\u210D").Put('N', "\u2115").Put('P', "\u2119").
		Put('Q', "\u211A").Put('R', "\u211D").Put('Z', "\u2124").
		Run('0', doubleDigit, 10).
		Map()
}

func mathBoldMap() codepoint.Map {
	return letters(boldUpper, boldLower).Map()
}

func mathBoldItalicMap() codepoint.Map {
	return letters(boldItalicUpper, boldItalicLower).Map()
}

// --- Enclosed letters -------------------------------------------------------

func circledMap() codepoint.Map {
	return letters(circledUpper, circledLower).
		Put('0', "⓪").Run('1', circledDigit1, 9).
		Map()
}

// Negative circled letters exist for capitals only.
func circledNegativeMap() codepoint.Map {
	return codepoint.NewBuilder().
		Run('A', negCircledUpper, 26).
		Put('0', "⓿").Run('1', negCircledDigit1, 9).
		Map()
}

func squaredMap() codepoint.Map {
	return codepoint.NewBuilder().Run('A', squaredUpper, 26).Map()
}

func squaredNegativeMap() codepoint.Map {
	return codepoint.NewBuilder().Run('A', negSquaredUpper, 26).Map()
}

// There is no parenthesized zero and no parenthesized capital.
func parenthesizedMap() codepoint.Map {
	return codepoint.NewBuilder().Run('a', parenLower, 26).Run('1', parenDigit1, 9).Map()
}

func bubbleMap() codepoint.Map {
	return codepoint.NewBuilder().
		Table('a', "ⓐⓑⓒⓓⓔⓕⓖⓗⓘⓙⓚⓛⓜⓝⓞⓟⓠⓡⓢⓣⓤⓥⓦⓧⓨⓩ").
		Table('A', "ⒶⒷⒸⒹⒺⒻⒼⒽⒾⒿⓀⓁⓂⓃⓄⓅⓆⓇⓈⓉⓊⓋⓌⓍⓎⓏ").
		Table('0', "⓪①②③④⑤⑥⑦⑧⑨").
		Map()
}

func bubbleNegativeMap() codepoint.Map {
	return codepoint.NewBuilder().
		Run('A', negCircledUpper, 26).
		Table('0', "⓿❶❷❸❹❺❻❼❽❾").
		Map()
}

func fullwidthMap() codepoint.Map {
	return letters(fullwidthUpper, fullwidthLower).Run('0', fullwidthDigit, 10).Map()
}

// Both cases map to the same regional indicator symbol.
func regionalFlagsMap() codepoint.Map {
	return codepoint.NewBuilder().Run('A', regionalIndicatorA, 26).Run('a', regionalIndicatorA, 26).Map()
}

// --- Literal tables ---------------------------------------------------------

func smallCapsMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "ᴀ", "b", "ʙ", "c", "ᴄ", "d", "ᴅ", "e", "ᴇ", "f", "ꜰ",
		"g", "ɢ", "h", "ʜ", "i", "ɪ", "j", "ᴊ", "k", "ᴋ", "l", "ʟ",
		"m", "ᴍ", "n", "ɴ", "o", "ᴏ", "p", "ᴘ", "q", "ǫ", "r", "ʀ",
		"s", "s", "t", "ᴛ", "u", "ᴜ", "v", "ᴠ", "w", "ᴡ", "x", "x",
		"y", "ʏ", "z", "ᴢ",
	).Map()
}

// Superscript has no glyphs for q and for several capitals.
func superscriptMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴", "5", "⁵",
		"6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹", "a", "ᵃ", "b", "ᵇ",
		"c", "ᶜ", "d", "ᵈ", "e", "ᵉ", "f", "ᶠ", "g", "ᵍ", "h", "ʰ",
		"i", "ⁱ", "j", "ʲ", "k", "ᵏ", "l", "ˡ", "m", "ᵐ", "n", "ⁿ",
		"o", "ᵒ", "p", "ᵖ", "r", "ʳ", "s", "ˢ", "t", "ᵗ", "u", "ᵘ",
		"v", "ᵛ", "w", "ʷ", "x", "ˣ", "y", "ʸ", "z", "ᶻ", "A", "ᴬ",
		"B", "ᴮ", "D", "ᴰ", "E", "ᴱ", "G", "ᴳ", "H", "ᴴ", "I", "ᴵ",
		"J", "ᴶ", "K", "ᴷ", "L", "ᴸ", "M", "ᴹ", "N", "ᴺ", "O", "ᴼ",
		"P", "ᴾ", "R", "ᴿ", "T", "ᵀ", "U", "ᵁ", "V", "ⱽ", "W", "ᵂ",
		"+", "⁺", "-", "⁻", "=", "⁼", "(", "⁽", ")", "⁾",
	).Map()
}

func subscriptMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄", "5", "₅",
		"6", "₆", "7", "₇", "8", "₈", "9", "₉", "a", "ₐ", "e", "ₑ",
		"h", "ₕ", "i", "ᵢ", "j", "ⱼ", "k", "ₖ", "l", "ₗ", "m", "ₘ",
		"n", "ₙ", "o", "ₒ", "p", "ₚ", "r", "ᵣ", "s", "ₛ", "t", "ₜ",
		"u", "ᵤ", "v", "ᵥ", "x", "ₓ", "+", "₊", "-", "₋", "=", "₌",
		"(", "₍", ")", "₎",
	).Map()
}

func currencyMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "₳", "b", "฿", "c", "₵", "d", "đ", "e", "€", "f", "ƒ",
		"l", "£", "n", "₦", "p", "₱", "r", "₹", "s", "$", "t", "₮",
		"w", "₩", "y", "¥", "A", "₳", "B", "฿", "C", "₵", "D", "Đ",
		"E", "€", "F", "Ƒ", "L", "£", "N", "₦", "P", "₱", "R", "₹",
		"S", "$", "T", "₮", "W", "₩", "Y", "¥",
	).Map()
}

func medievalMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "α", "b", "ϐ", "c", "¢", "d", "∂", "e", "ε", "f", "ƒ",
		"g", "ց", "h", "հ", "i", "ì", "j", "ʝ", "k", "ҝ", "l", "ӏ",
		"m", "ʍ", "n", "ղ", "o", "σ", "p", "ρ", "q", "φ", "r", "ɾ",
		"s", "ร", "t", "τ", "u", "մ", "v", "ѵ", "w", "ա", "x", "×",
		"y", "ყ", "z", "ʐ", "A", "Ⱥ", "B", "Ᏸ", "C", "Ꮯ", "D", "Ꭰ",
		"E", "Ɛ", "F", "Ƒ", "G", "Ɠ", "H", "Ƕ", "I", "Ꭵ", "J", "Ʝ",
		"K", "Ҡ", "L", "Ꝉ", "M", "Ɱ", "N", "Ɲ", "O", "Ơ", "P", "Ᵽ",
		"Q", "Ҩ", "R", "Ɍ", "S", "Ꞩ", "T", "Ⱦ", "U", "Ա", "V", "Ꮙ",
		"W", "Ꮤ", "X", "Ӿ", "Y", "Ƴ", "Z", "Ȥ",
	).Map()
}

// CJK look-alikes are case-insensitive.
func asianMap() codepoint.Map {
	b := codepoint.NewBuilder().Pairs(
		"a", "ﾑ", "b", "乃", "c", "ᄃ", "d", "り", "e", "乇", "f", "ｷ",
		"g", "ム", "h", "ん", "i", "ﾉ", "j", "ﾌ", "k", "ズ", "l", "ﾚ",
		"m", "ﾶ", "n", "刀", "o", "の", "p", "ｱ", "q", "ゐ", "r", "尺",
		"s", "丂", "t", "ｲ", "u", "ひ", "v", "ｳ", "w", "W", "x", "ﾒ",
		"y", "ﾘ", "z", "乙",
	)
	lower := b.Map()
	for _, r := range lower.Keys() {
		s, _ := lower.Lookup(r)
		b.Put(unicode.ToUpper(r), s)
	}
	return b.Map()
}

func curlyMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "𝒶", "b", "𝒷", "c", "𝒸", "d", "𝒹", "e", "𝑒", "f", "𝒻",
		"g", "𝑔", "h", "𝒽", "i", "𝒾", "j", "𝒿", "k", "𝓀", "l", "𝓁",
		"m", "𝓂", "n", "𝓃", "o", "𝑜", "p", "𝓅", "q", "𝓆", "r", "𝓇",
		"s", "𝓈", "t", "𝓉", "u", "𝓊", "v", "𝓋", "w", "𝓌", "x", "𝓍",
		"y", "𝓎", "z", "𝓏", "A", "𝒜", "B", "𝐵", "C", "𝒞", "D", "𝒟",
		"E", "𝐸", "F", "𝐹", "G", "𝒢", "H", "𝐻", "I", "𝐼", "J", "𝒥",
		"K", "𝒦", "L", "𝐿", "M", "𝑀", "N", "𝒩", "O", "𝒪", "P", "𝒫",
		"Q", "𝒬", "R", "𝑅", "S", "𝒮", "T", "𝒯", "U", "𝒰", "V", "𝒱",
		"W", "𝒲", "X", "𝒳", "Y", "𝒴", "Z", "𝒵",
	).Map()
}

func tinyMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "ᵃ", "b", "ᵇ", "c", "ᶜ", "d", "ᵈ", "e", "ᵉ", "f", "ᶠ",
		"g", "ᵍ", "h", "ʰ", "i", "ⁱ", "j", "ʲ", "k", "ᵏ", "l", "ˡ",
		"m", "ᵐ", "n", "ⁿ", "o", "ᵒ", "p", "ᵖ", "r", "ʳ", "s", "ˢ",
		"t", "ᵗ", "u", "ᵘ", "v", "ᵛ", "w", "ʷ", "x", "ˣ", "y", "ʸ",
		"z", "ᶻ", "A", "ᴬ", "B", "ᴮ", "C", "ᶜ", "D", "ᴰ", "E", "ᴱ",
		"F", "ᶠ", "G", "ᴳ", "H", "ᴴ", "I", "ᴵ", "J", "ᴶ", "K", "ᴷ",
		"L", "ᴸ", "M", "ᴹ", "N", "ᴺ", "O", "ᴼ", "P", "ᴾ", "R", "ᴿ",
		"S", "ˢ", "T", "ᵀ", "U", "ᵁ", "V", "ⱽ", "W", "ᵂ", "X", "ˣ",
		"Y", "ʸ", "Z", "ᶻ", "0", "⁰", "1", "¹", "2", "²", "3", "³",
		"4", "⁴", "5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
		"(", "⁽", ")", "⁾", "+", "⁺", "-", "⁻", "=", "⁼",
	).Map()
}

func upsideDownMap() codepoint.Map {
	return codepoint.NewBuilder().Pairs(
		"a", "ɐ", "b", "q", "c", "ɔ", "d", "p", "e", "ǝ", "f", "ɟ",
		"g", "ƃ", "h", "ɥ", "i", "ᴉ", "j", "ɾ", "k", "ʞ", "l", "l",
		"m", "ɯ", "n", "u", "o", "o", "p", "d", "q", "b", "r", "ɹ",
		"s", "s", "t", "ʇ", "u", "n", "v", "ʌ", "w", "ʍ", "x", "x",
		"y", "ʎ", "z", "z", "A", "∀", "B", "q", "C", "Ɔ", "D", "p",
		"E", "Ǝ", "F", "Ⅎ", "G", "פ", "H", "H", "I", "I", "J", "ſ",
		"K", "ʞ", "L", "˥", "M", "W", "N", "N", "O", "O", "P", "Ԁ",
		"Q", "Ò", "R", "ɹ", "S", "S", "T", "┴", "U", "∩", "V", "Λ",
		"W", "M", "X", "X", "Y", "⅄", "Z", "Z", "0", "0", "1", "Ɩ",
		"2", "ᄅ", "3", "Ɛ", "4", "ㄣ", "5", "ϛ", "6", "9", "7", "ㄥ",
		"8", "8", "9", "6", ".", "˙", ",", "'", "!", "¡", "?", "¿",
		"'", ",", "\"", "„", ";", "؛", "(", ")", ")", "(",
	).Map()
}
