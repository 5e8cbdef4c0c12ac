package router

// Letter ties a lower-case Cyrillic letter to the directory name used for it.
type Letter struct {
	Rune rune
	Name string
}

const (
	// Misc holds records whose lemma starts with anything but a Cyrillic letter.
	Misc = "misc"
	// Unmatched holds lines that did not split into a record.
	Unmatched = "unmatched"
)

var letters = []Letter{
	{'а', "a"},
	{'б', "be"},
	{'в', "ve"},
	{'г', "ge"},
	{'д', "de"},
	{'ђ', "dje"},
	{'е', "e"},
	{'ж', "zhe"},
	{'з', "ze"},
	{'и', "i"},
	{'ј', "je"},
	{'к', "ka"},
	{'л', "lamda"},
	{'љ', "lje"},
	{'м', "em"},
	{'н', "en"},
	{'њ', "nje"},
	{'о', "o"},
	{'п', "pe"},
	{'р', "er"},
	{'с', "es"},
	{'т', "te"},
	{'ћ', "tshe"},
	{'у', "u"},
	{'ф', "ef"},
	{'х', "ha"},
	{'ц', "ce"},
	{'ч', "ch"},
	{'џ', "dzhe"},
	{'ш', "sha"},
}

// Letters returns the alphabet in order.
func Letters() []Letter {
	out := make([]Letter, len(letters))
	copy(out, letters)
	return out
}

// BucketNames returns every bucket directory name: the letters followed by
// misc and unmatched.
func BucketNames() []string {
	names := make([]string, 0, len(letters)+2)
	for _, l := range letters {
		names = append(names, l.Name)
	}
	return append(names, Misc, Unmatched)
}
