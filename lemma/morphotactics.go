package lemma

// Paradigm identifies which Turkish inflectional paradigm a suffix
// belongs to.
type Paradigm int

const (
	// ParadigmUnknown marks a suffix absent from both slot maps.
	ParadigmUnknown Paradigm = iota
	ParadigmNominal
	ParadigmVerbal
)

// Nominal paradigm slots, in root-adjacent order (spec.md §3).
const (
	SlotPlural    = 1
	SlotPossessive = 2
	SlotCase      = 3
	SlotCopulaN   = 4
)

// Verbal paradigm slots, in root-adjacent order (spec.md §3).
const (
	SlotVoice     = 1
	SlotNegation  = 2
	SlotTenseAspect = 3
	SlotPerson    = 4
	SlotCopulaV   = 5
)

// nominalSlots maps a nominal suffix surface form to its slot ordinal.
var nominalSlots = map[string]int{
	"lar": SlotPlural,
	"ler": SlotPlural,

	"ım":   SlotPossessive,
	"im":   SlotPossessive,
	"um":   SlotPossessive,
	"üm":   SlotPossessive,
	"ımız": SlotPossessive,
	"imiz": SlotPossessive,
	"umuz": SlotPossessive,
	"ümüz": SlotPossessive,

	"da":  SlotCase,
	"de":  SlotCase,
	"ta":  SlotCase,
	"te":  SlotCase,
	"dan": SlotCase,
	"den": SlotCase,
	"tan": SlotCase,
	"ten": SlotCase,
	"ın":  SlotCase,
	"in":  SlotCase,
	"un":  SlotCase,
	"ün":  SlotCase,
	"nın": SlotCase,
	"nin": SlotCase,
	"nun": SlotCase,
	"nün": SlotCase,
	"a":   SlotCase,
	"e":   SlotCase,
	"ya":  SlotCase,
	"ye":  SlotCase,
	"ı":   SlotCase,
	"i":   SlotCase,
	"u":   SlotCase,
	"ü":   SlotCase,

	"dır": SlotCopulaN,
	"dir": SlotCopulaN,
	"dur": SlotCopulaN,
	"dür": SlotCopulaN,
}

// verbalSlots maps a verbal suffix surface form to its slot ordinal.
var verbalSlots = map[string]int{
	"ıl": SlotVoice,
	"il": SlotVoice,
	"ul": SlotVoice,
	"ül": SlotVoice,
	"ın": SlotVoice,
	"in": SlotVoice,
	"un": SlotVoice,
	"ün": SlotVoice,

	"ma": SlotNegation,
	"me": SlotNegation,

	"di":   SlotTenseAspect,
	"dı":   SlotTenseAspect,
	"du":   SlotTenseAspect,
	"dü":   SlotTenseAspect,
	"ti":   SlotTenseAspect,
	"tı":   SlotTenseAspect,
	"tu":   SlotTenseAspect,
	"tü":   SlotTenseAspect,
	"yor":  SlotTenseAspect,
	"acak": SlotTenseAspect,
	"ecek": SlotTenseAspect,
	"mış":  SlotTenseAspect,
	"miş":  SlotTenseAspect,
	"muş":  SlotTenseAspect,
	"müş":  SlotTenseAspect,

	"m": SlotPerson,
	"n": SlotPerson,
	"k": SlotPerson,
	"z": SlotPerson,

	"nız": SlotPerson,
	"niz": SlotPerson,
	"nuz": SlotPerson,
	"nüz": SlotPerson,

	"dır": SlotCopulaV,
	"dir": SlotCopulaV,
	"dur": SlotCopulaV,
	"dür": SlotCopulaV,
}

// classifySuffix classifies a single suffix into its paradigm,
// consulting the verbal map first: a tie-break for surface forms shared
// between paradigms (spec.md §4.2). The sequence validator below tries
// the other interpretation when this one doesn't yield a valid
// monotone sequence.
func classifySuffix(suffix string) (Paradigm, int) {
	if slot, ok := verbalSlots[suffix]; ok {
		return ParadigmVerbal, slot
	}
	if slot, ok := nominalSlots[suffix]; ok {
		return ParadigmNominal, slot
	}
	return ParadigmUnknown, 0
}

// ValidateMorphotacticSequence reports whether suffixes — ordered
// root-adjacent first — is a morphotactically valid sequence.
//
//   - An empty sequence is valid.
//   - If any suffix is ambiguous (present in both paradigm maps), the
//     all-nominal and all-verbal interpretations are tried
//     independently; the sequence is valid if either is a valid
//     monotone sequence.
//   - Otherwise every suffix must classify into the same paradigm;
//     mixed-paradigm sequences are invalid.
//   - In a sequence with no ambiguous suffix, the first unknown suffix
//     reached (reading root-adjacent first) makes the sequence pass
//     permissively, unless a paradigm mismatch came before it: the
//     stripper's other two predicates (harmony, root validity) are
//     assumed to have already filtered impossible candidates. In a
//     sequence with an ambiguous suffix, an unknown suffix fits neither
//     interpretation, so the sequence is invalid.
//   - Within one paradigm, slot ordinals read left-to-right must be
//     non-decreasing (equal values, e.g. doubled plural, are allowed).
func ValidateMorphotacticSequence(suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}

	if hasAmbiguousSuffix(suffixes) {
		return validatesAsNominal(suffixes) || validatesAsVerbal(suffixes)
	}

	paradigm := ParadigmUnknown
	slots := make([]int, 0, len(suffixes))
	for _, s := range suffixes {
		p, slot := classifySuffix(s)
		switch p {
		case ParadigmUnknown:
			return true // permissive: can't classify, don't block
		default:
			if paradigm == ParadigmUnknown {
				paradigm = p
			} else if paradigm != p {
				return false // mixed paradigm
			}
			slots = append(slots, slot)
		}
	}
	return isNonDecreasing(slots)
}

// hasAmbiguousSuffix reports whether any suffix in the list belongs to
// both the nominal and verbal maps.
func hasAmbiguousSuffix(suffixes []string) bool {
	for _, s := range suffixes {
		_, inNominal := nominalSlots[s]
		_, inVerbal := verbalSlots[s]
		if inNominal && inVerbal {
			return true
		}
	}
	return false
}

// validatesAsNominal tries the all-nominal interpretation of suffixes.
func validatesAsNominal(suffixes []string) bool {
	slots := make([]int, 0, len(suffixes))
	for _, s := range suffixes {
		slot, ok := nominalSlots[s]
		if !ok {
			return false
		}
		slots = append(slots, slot)
	}
	return isNonDecreasing(slots)
}

// validatesAsVerbal tries the all-verbal interpretation of suffixes.
func validatesAsVerbal(suffixes []string) bool {
	slots := make([]int, 0, len(suffixes))
	for _, s := range suffixes {
		slot, ok := verbalSlots[s]
		if !ok {
			return false
		}
		slots = append(slots, slot)
	}
	return isNonDecreasing(slots)
}

// isNonDecreasing reports whether slots is sorted non-decreasing.
// A strictly-increasing check would reject legitimate doubled markers
// (e.g. repeated plural); equal adjacent ordinals are permitted.
func isNonDecreasing(slots []int) bool {
	for i := 1; i < len(slots); i++ {
		if slots[i] < slots[i-1] {
			return false
		}
	}
	return true
}
