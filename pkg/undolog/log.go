package undolog

// Log is the append-only mutation transcript owned by a single game
// state. Popping is the only removal operation; records are otherwise
// immutable once appended. Log does not itself know how to invert a
// record's effect on card/zone/player state — that lives in pkg/state,
// which owns the structures being mutated — but it does own the
// bookkeeping (choice-point marks, turn-boundary scanning) that's
// purely about record positions.
type Log struct {
	records []Record

	// choicePointMarks holds the index (into records) of each
	// ChoicePoint record appended, in ascending order, for fast
	// rewind-to-choice-point.
	choicePointMarks []int
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// Append adds r to the end of the log. If r is a ChoicePoint record,
// its position is also remembered as a choice-point mark.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
	if r.Kind == KindChoicePoint {
		l.choicePointMarks = append(l.choicePointMarks, len(l.records)-1)
	}
}

// Len returns the number of records currently in the log.
func (l *Log) Len() int { return len(l.records) }

// Records returns the log's contents in append order. The returned
// slice aliases the log's internal storage and must not be mutated by
// the caller.
func (l *Log) Records() []Record { return l.records }

// Pop removes and returns the most recent record. Returns false if the
// log was empty.
func (l *Log) Pop() (Record, bool) {
	n := len(l.records)
	if n == 0 {
		return Record{}, false
	}
	r := l.records[n-1]
	l.records = l.records[:n-1]
	if r.Kind == KindChoicePoint {
		if m := len(l.choicePointMarks); m > 0 && l.choicePointMarks[m-1] == n-1 {
			l.choicePointMarks = l.choicePointMarks[:m-1]
		}
	}
	return r, true
}

// RewindToChoicePoint reports the count of records that must be popped
// (by the caller, one at a time via Pop, inverting each) to reach and
// include the most recent choice-point mark. Returns ok=false if there
// is no choice point left to rewind to.
func (l *Log) RewindToChoicePoint() (count int, ok bool) {
	if len(l.choicePointMarks) == 0 {
		return 0, false
	}
	mark := l.choicePointMarks[len(l.choicePointMarks)-1]
	return len(l.records) - mark, true
}

// RewindToTurnStart reports the count of records that must be popped to
// reach and include the most recent ChangeTurn record, along with that
// record's turn number and the ordered (forward chronological) list of
// ChoicePoint records between the current position and the
// ChangeTurn, for resume's replay-controller seeding. Returns ok=false
// if there is no ChangeTurn record in the log.
func (l *Log) RewindToTurnStart() (count int, turnNumber int, choicePoints []Record, ok bool) {
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].Kind == KindChangeTurn {
			count = len(l.records) - i
			turnNumber = l.records[i].NewTurnNumber
			for j := i + 1; j < len(l.records); j++ {
				if l.records[j].Kind == KindChoicePoint {
					choicePoints = append(choicePoints, l.records[j])
				}
			}
			return count, turnNumber, choicePoints, true
		}
	}
	return 0, 0, nil, false
}

// CurrentTurn returns the turn number of the most recent ChangeTurn
// record, or ok=false if none has been recorded yet.
func (l *Log) CurrentTurn() (turnNumber int, ok bool) {
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].Kind == KindChangeTurn {
			return l.records[i].NewTurnNumber, true
		}
	}
	return 0, false
}
