package lexicon

// Default returns the built-in English lexicon. The tables target the stock
// phrasing of large-language-model output: transition cliches, formal register
// vocabulary, uncontracted verb phrases, and the "three X" listicle tic.
func Default() *Lexicon {
	return New(defaultTables())
}

func defaultTables() Tables {
	return Tables{
		Cliches: []string{
			"It is important to note that",
			"It is worth mentioning that",
			"It's worth noting that",
			"In today's fast-paced world",
			"In the ever-evolving landscape",
			"Without further ado",
			"At the end of the day",
			"Last but not least",
			"First and foremost",
			"Needless to say",
			"In conclusion",
			"In summary",
			"Furthermore",
			"Moreover",
			"Additionally",
		},
		Replacements: []Replacement{
			{Formal: "take it to the next level", Casual: []string{"step it up", "push it further"}},
			{Formal: "a wide range of", Casual: []string{"lots of", "all kinds of"}},
			{Formal: "in order to", Casual: []string{"to"}},
			{Formal: "comprehensive", Casual: []string{"complete", "thorough", "full"}},
			{Formal: "subsequently", Casual: []string{"then", "later", "after that"}},
			{Formal: "methodology", Casual: []string{"method", "approach"}},
			{Formal: "demonstrate", Casual: []string{"show", "prove"}},
			{Formal: "facilitate", Casual: []string{"help", "make easier"}},
			{Formal: "utilization", Casual: []string{"use"}},
			{Formal: "implement", Casual: []string{"set up", "put in place", "build"}},
			{Formal: "numerous", Casual: []string{"many", "plenty of", "a lot of"}},
			{Formal: "commence", Casual: []string{"start", "begin", "kick off"}},
			{Formal: "endeavor", Casual: []string{"try", "attempt"}},
			{Formal: "leverage", Casual: []string{"use", "tap into", "make the most of"}},
			{Formal: "paramount", Casual: []string{"key", "vital", "crucial"}},
			{Formal: "optimal", Casual: []string{"best", "ideal"}},
			{Formal: "utilize", Casual: []string{"use", "work with", "rely on"}},
			{Formal: "obtain", Casual: []string{"get", "pick up"}},
			{Formal: "acquire", Casual: []string{"get", "gain"}},
			{Formal: "ensure", Casual: []string{"make sure", "see to it"}},
		},
		Contractions: []Contraction{
			{Expanded: "should not", Contracted: "shouldn't"},
			{Expanded: "would not", Contracted: "wouldn't"},
			{Expanded: "could not", Contracted: "couldn't"},
			{Expanded: "does not", Contracted: "doesn't"},
			{Expanded: "have not", Contracted: "haven't"},
			{Expanded: "were not", Contracted: "weren't"},
			{Expanded: "they are", Contracted: "they're"},
			{Expanded: "they will", Contracted: "they'll"},
			{Expanded: "will not", Contracted: "won't"},
			{Expanded: "did not", Contracted: "didn't"},
			{Expanded: "has not", Contracted: "hasn't"},
			{Expanded: "was not", Contracted: "wasn't"},
			{Expanded: "are not", Contracted: "aren't"},
			{Expanded: "there is", Contracted: "there's"},
			{Expanded: "you will", Contracted: "you'll"},
			{Expanded: "do not", Contracted: "don't"},
			{Expanded: "is not", Contracted: "isn't"},
			{Expanded: "cannot", Contracted: "can't"},
			{Expanded: "that is", Contracted: "that's"},
			{Expanded: "here is", Contracted: "here's"},
			{Expanded: "you are", Contracted: "you're"},
			{Expanded: "we are", Contracted: "we're"},
			{Expanded: "we will", Contracted: "we'll"},
			{Expanded: "let us", Contracted: "let's"},
			{Expanded: "it is", Contracted: "it's"},
			{Expanded: "I will", Contracted: "I'll"},
			{Expanded: "I am", Contracted: "I'm"},
		},
		VoiceMarkers: []string{
			"Honestly, ",
			"Here's the thing: ",
			"Look, ",
			"Truth be told, ",
			"Let's be real: ",
		},
		Hedges: []string{
			"probably",
			"maybe",
			"arguably",
			"perhaps",
			"likely",
			"possibly",
			"generally",
			"usually",
			"often",
			"in my experience",
		},
		Questions: []string{
			"Sound familiar?",
			"Makes sense, right?",
			"See where this is going?",
			"Why does this matter?",
			"Ever wondered why that is?",
		},
		Asides: []string{
			"(at least in my experience)",
			"(trust me on this one)",
			"(more on that later)",
			"(yes, really)",
			"(I learned this the hard way)",
		},
		TriadNouns: []string{
			"things", "items", "points", "factors", "reasons", "ways", "steps",
			"tips", "elements", "aspects", "components", "features", "benefits",
			"advantages", "principles", "strategies", "methods", "techniques",
			"approaches", "keys", "areas", "parts",
		},
		Repetitions: []Repetition{
			{Trigger: "important", Emphasis: "Really important"},
			{Trigger: "matters", Emphasis: "It really matters"},
			{Trigger: "works", Emphasis: "It just works"},
			{Trigger: "helps", Emphasis: "It genuinely helps"},
		},
	}
}
