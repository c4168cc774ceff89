package tokenizer

import "regexp"

// turkishLetter is the closed Turkish Latin alphabet the original
// source's token grammar recognizes, not full Unicode \p{L}.
const turkishLetter = `A-Za-zÇĞİÖŞÜçğıöşü`

// tokenPattern mirrors the original's ordered alternation: URL,
// emoticon, apostrophe-joined word, number, hyphen-joined word,
// single-character punctuation. Go's RE2 engine resolves alternation
// leftmost-first, same as the original's regex engine, so the branch
// order below is load-bearing: it is what makes "don't" match as one
// apostrophe-word token instead of three.
var tokenPattern = regexp.MustCompile(
	`(?P<url>https?://\S+|www\.\S+)` +
		`|(?P<emoticon>[:;=8][-^']?[)DPOo(\[/\\])` +
		`|(?P<word>[` + turkishLetter + `]+(?:'[` + turkishLetter + `]+)?)` +
		`|(?P<number>[0-9]+(?:[.,][0-9]+)*(?:[-–][0-9]+)?)` +
		`|(?P<hyphenword>[` + turkishLetter + `]+(?:-[` + turkishLetter + `]+)*)` +
		`|(?P<punct>[^\p{L}\p{N}_\s])`,
)

// groupNames caches tokenPattern.SubexpNames() for repeated lookups.
var groupNames = tokenPattern.SubexpNames()

// scan finds every grammar match in s and converts each match's byte
// offsets to character offsets, classifying it by which named group
// matched.
func scan(s string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return nil
	}

	byteToChar := buildByteToCharIndex(s)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		typ := classify(m)
		tokens = append(tokens, Token{
			Text:  s[start:end],
			Start: byteToChar[start],
			End:   byteToChar[end],
			Type:  typ,
		})
	}
	return tokens
}

// classify inspects which named submatch group is non-empty for this
// match and returns the corresponding TokenType. Word and hyphenword
// both classify as Word: the grammar only splits them to mirror the
// original's two-pattern structure, not to distinguish a caller-visible
// type.
func classify(m []int) TokenType {
	for i, name := range groupNames {
		if name == "" || i*2+1 >= len(m) {
			continue
		}
		if m[i*2] == -1 {
			continue
		}
		switch name {
		case "url":
			return URL
		case "emoticon":
			return Emoticon
		case "word", "hyphenword":
			return Word
		case "number":
			return Number
		case "punct":
			return Punctuation
		}
	}
	return Punctuation
}

// buildByteToCharIndex returns a slice indexed by byte offset into s,
// giving the character (rune) offset at that byte position. Computed
// once per call in a single forward pass so every match's conversion
// is an O(1) lookup rather than a re-scan of the prefix.
func buildByteToCharIndex(s string) []int {
	index := make([]int, len(s)+1)
	charPos := 0
	lastByte := 0
	for bytePos := range s {
		for b := lastByte; b <= bytePos; b++ {
			index[b] = charPos
		}
		lastByte = bytePos + 1
		charPos++
	}
	for b := lastByte; b <= len(s); b++ {
		index[b] = charPos
	}
	return index
}
