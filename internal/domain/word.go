package domain

// Word is a headword with its senses in page order.
type Word struct {
	Word     string
	Meanings []Meaning
}

// Meaning is one sense of a headword: its definition and usage examples.
type Meaning struct {
	Definition string
	Examples   []string
}

// Synonym is a curated synonym with an example sentence that may carry cloze markers.
type Synonym struct {
	Word    string
	Example string
}

// WithExampleLimit returns a deep copy of w with every meaning's examples
// truncated to at most n. A negative n keeps all examples.
func (w Word) WithExampleLimit(n int) Word {
	out := Word{Word: w.Word, Meanings: make([]Meaning, len(w.Meanings))}
	for i, m := range w.Meanings {
		examples := m.Examples
		if n >= 0 && len(examples) > n {
			examples = examples[:n]
		}
		out.Meanings[i] = Meaning{
			Definition: m.Definition,
			Examples:   append([]string{}, examples...),
		}
	}
	return out
}

// Capitalized returns a copy of w with the headword capitalized for display.
func (w Word) Capitalized() Word {
	out := w.WithExampleLimit(-1)
	out.Word = Capitalize(w.Word)
	return out
}
