package style

import "github.com/npillmayer/stylize/engine/codepoint"

// Category keys.
const (
	CatSerif        = "Serif"
	CatSansSerif    = "Sans-Serif"
	CatScript       = "Script"
	CatFraktur      = "Fraktur"
	CatMonospace    = "Monospace"
	CatMathematical = "Mathematical"
	CatCircled      = "Circled"
	CatSquared      = "Squared"
	CatDecorative   = "Decorative"
	CatFullwidth    = "Fullwidth"
	CatCaps         = "Caps"
	CatSpecial      = "Special"
	CatDecoration   = "Decoration"
	CatTransform    = "Transform"
	CatGlitch       = "Glitch"
)

func mapped(id, cat, icon string, m codepoint.Map) Style {
	return Style{ID: id, Category: cat, Icon: icon, conv: NewMapConverter(m)}
}

func procedural(id, cat, icon string, c Converter) Style {
	return Style{ID: id, Category: cat, Icon: icon, conv: c}
}

// definitions lists all styles in registry order. Randomized styles draw
// their generators from random.
func definitions(random RandomSource) []Style {
	return []Style{
		mapped("serifNormal", CatSerif, "FONT", serifNormalMap()),
		mapped("serifBold", CatSerif, "BOLD", serifBoldMap()),
		mapped("serifItalic", CatSerif, "ITALIC", serifItalicMap()),
		mapped("serifBoldItalic", CatSerif, "BOLD", serifBoldItalicMap()),
		mapped("sansSerifNormal", CatSansSerif, "FONT", sansMap()),
		mapped("sansSerifBold", CatSansSerif, "BOLD", sansBoldMap()),
		mapped("sansSerifItalic", CatSansSerif, "ITALIC", sansItalicMap()),
		mapped("sansSerifBoldItalic", CatSansSerif, "BOLD", sansBoldItalicMap()),
		mapped("scriptNormal", CatScript, "PEN", scriptMap()),
		mapped("scriptBold", CatScript, "PEN", boldScriptMap()),
		mapped("frakturNormal", CatFraktur, "SCROLL", frakturMap()),
		mapped("frakturBold", CatFraktur, "SCROLL", boldFrakturMap()),
		mapped("monospace", CatMonospace, "TERMINAL", monospaceMap()),
		mapped("doubleStruck", CatMathematical, "INFINITY", doubleStruckMap()),
		mapped("circled", CatCircled, "CIRCLE", circledMap()),
		mapped("circledNegative", CatCircled, "DOT_CIRCLE", circledNegativeMap()),
		mapped("squared", CatSquared, "SQUARE", squaredMap()),
		mapped("squaredNegative", CatSquared, "STOP", squaredNegativeMap()),
		mapped("parenthesized", CatDecorative, "CODE", parenthesizedMap()),
		mapped("fullwidth", CatFullwidth, "TEXT_WIDTH", fullwidthMap()),
		mapped("smallCaps", CatCaps, "FONT", smallCapsMap()),
		mapped("superscript", CatMathematical, "SUPERSCRIPT", superscriptMap()),
		mapped("subscript", CatMathematical, "SUBSCRIPT", subscriptMap()),
		mapped("currency", CatSpecial, "DOLLAR", currencyMap()),
		mapped("medieval", CatDecorative, "CHESS_ROOK", medievalMap()),
		mapped("asianStyle", CatFullwidth, "LANGUAGE", asianMap()),
		mapped("bubble", CatCircled, "CIRCLE", bubbleMap()),
		mapped("bubbleNegative", CatCircled, "ADJUST", bubbleNegativeMap()),
		mapped("regionalFlags", CatSpecial, "FLAG", regionalFlagsMap()),
		mapped("mathBold", CatMathematical, "CALCULATOR", mathBoldMap()),
		mapped("mathBoldItalic", CatMathematical, "CALCULATOR", mathBoldItalicMap()),
		mapped("curly", CatScript, "SIGNATURE", curlyMap()),
		mapped("tiny", CatMathematical, "COMPRESS", tinyMap()),
		procedural("strikethrough", CatDecoration, "STRIKETHROUGH", Diacritic{Mark: MarkStrikethrough}),
		procedural("underline", CatDecoration, "UNDERLINE", Diacritic{Mark: MarkUnderline}),
		procedural("overline", CatDecoration, "MINUS", Diacritic{Mark: MarkOverline}),
		procedural("doubleUnderline", CatDecoration, "UNDERLINE", Diacritic{Mark: MarkDoubleUnderline}),
		procedural("slashed", CatDecoration, "SLASH", Diacritic{Mark: MarkSlash}),
		procedural("upsideDown", CatTransform, "UNDO", UpsideDown{flip: upsideDownMap()}),
		procedural("reversed", CatTransform, "EXCHANGE", ConverterFunc(Reverse)),
		procedural("wide", CatTransform, "ARROWS_H", ConverterFunc(Widen)),
		procedural("cute", CatDecorative, "HEART", Decorate{Symbols: cuteSymbols, Random: random}),
		procedural("zalgoLight", CatGlitch, "GHOST", Zalgo{MaxMarks: ZalgoLight, Random: random}),
		procedural("zalgoHeavy", CatGlitch, "GHOST", Zalgo{MaxMarks: ZalgoHeavy, Random: random}),
	}
}
