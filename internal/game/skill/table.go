package skill

// Untrained is the dice modifier for a skill with no related training at all.
const Untrained = -3

// Entry pairs a skill with a proficiency level.
type Entry struct {
	Skill Kind `yaml:"skill"`
	Level int  `yaml:"level"`
}

// Table maps skills to the proficiency levels a character is trained in.
// It is read-only after construction.
type Table struct {
	known map[Kind]int
}

// NewTable builds a Table from entries applied strictly in order. Immediately
// before each specialization is inserted, its general skill is inserted at
// level 0 unless already present. An explicit general entry listed earlier
// keeps its level; one listed later overwrites the 0.
//
// Postcondition: every specialization present has its general skill present.
func NewTable(entries ...Entry) *Table {
	known := make(map[Kind]int, len(entries))
	for _, e := range entries {
		if general, ok := General(e.Skill); ok {
			if _, present := known[general]; !present {
				known[general] = 0
			}
		}
		known[e.Skill] = e.Level
	}
	return &Table{known: known}
}

// DM returns the dice modifier for a check using kind:
//
//  1. the stored level when kind is trained directly;
//  2. 0 when kind is a specialization whose general skill is trained;
//  3. Untrained otherwise.
func (t *Table) DM(kind Kind) int {
	if level, ok := t.known[kind]; ok {
		return level
	}
	if general, ok := General(kind); ok {
		if _, trained := t.known[general]; trained {
			return 0
		}
	}
	return Untrained
}

// Level returns the level stored for kind, without any general-skill fallback.
func (t *Table) Level(kind Kind) (int, bool) {
	level, ok := t.known[kind]
	return level, ok
}

// Len returns the number of skills in the table, auto-inserted general skills included.
func (t *Table) Len() int {
	return len(t.known)
}
