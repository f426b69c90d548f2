package variety

import "regexp"

// Marker tables for the three assessments. All patterns except allCaps are
// matched against lowercased text, so they carry no case flags. The tables
// are read-only, process-wide constants.

// #region hot-cool

// hotMarkers raise the pressure score: exclamation runs, intensifiers,
// emphasis punctuation, urgency words.
var hotMarkers = []*regexp.Regexp{
	regexp.MustCompile(`!+|\?!`),
	regexp.MustCompile(`\b(very|really|absolutely|completely|totally)\b`),
	regexp.MustCompile(`\*\*|__|!!+|\?{2,}`),
	regexp.MustCompile(`\b(now|immediately|suddenly|always|never|must|need)\b`),
}

// allCaps is the one hot marker matched against the raw utterance, since
// lowercasing would erase it.
var allCaps = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// coolMarkers lower the pressure score: qualifiers, distancing verbs,
// modulation punctuation.
var coolMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(perhaps|maybe|might|could|somewhat|sometimes|slowly)\b`),
	regexp.MustCompile(`\b(observe|notice|sense|reflect)\b`),
	regexp.MustCompile(`[;:]|\.{2,}|—`),
}

// #endregion hot-cool

// #region embodiment

// embodiedMarkers count somatic, personal, and experiential references.
var embodiedMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(feel|felt|body|heart|breath|hands|chest|stomach|gut|throat)\b`),
	regexp.MustCompile(`\b(i|me|my|mine)\b`),
	regexp.MustCompile(`\b(sense|experience|perceive|aware)\b`),
}

// #endregion embodiment

// #region flow

// flowDisruptions are the dispersal punctuation classes: pauses,
// interruptions, trailing constructions.
var flowDisruptions = []*regexp.Regexp{
	regexp.MustCompile(`[,;:]`),
	regexp.MustCompile(`[\-()]`),
	regexp.MustCompile(`\.{3}|—`),
}

// sentenceBreaks counts explicit line breaks and sentence boundaries
// followed by a capitalised start.
var sentenceBreaks = regexp.MustCompile(`\n|[.!?][ \t]+[A-Z]`)

// sentenceSplit separates an utterance into sentences.
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// #endregion flow

// #region complexity-markers

// connectionMarkers detect comparison, relation, causation, and contrast.
var connectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(like|than|compare|compared|contrast|contrasted|similar|different)\b`),
	regexp.MustCompile(`\b(between|across|among|through|within)\b`),
	regexp.MustCompile(`\b(because|therefore|since|so)\b`),
	regexp.MustCompile(`\b(but|however|although|though|yet)\b`),
}

// movementMarkers detect conceptual movement across scale, time, and space.
var movementMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(part|whole|specific|general)\b`),
	regexp.MustCompile(`\b(now|then|before|after|while|during)\b`),
	regexp.MustCompile(`\b(here|there|between|across)\b`),
}

// tenseShifts and viewpointShifts detect perspectival movement.
var tenseShifts = regexp.MustCompile(`\b(had|have|will|shall|would|could|might|going to|used to)\b`)
var viewpointShifts = regexp.MustCompile(`\b(i|we|one|they|he|she|everyone|anyone)\b`)

// abstractionMarkers detect concept, quality, process, and systems language.
var abstractionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(idea|theory|question|meaning|system|process|truth|principle)\b`),
	regexp.MustCompile(`\b(nature|essence|character|aspect|form)\b`),
	regexp.MustCompile(`\b(becoming|changing|emerging|developing|flux)\b`),
	regexp.MustCompile(`\b(pattern|structure|relation|relationship|dynamic)\b`),
}

// recursionMarkers detect self-reference and nesting.
var recursionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(this|that|these|those)\b`),
	regexp.MustCompile(`\b(itself|own|self)\b`),
	regexp.MustCompile(`\b(think|consider|understand|question)\b`),
	regexp.MustCompile(`\b(within|inside|containing|embedded)\b`),
	regexp.MustCompile(`\b(again|back|return|cycle|recur|echo)\b`),
}

// #endregion complexity-markers

// #region helpers

// countAll sums match counts for a set of patterns over text.
func countAll(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// #endregion helpers
