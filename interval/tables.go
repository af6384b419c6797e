package interval

// Interval names.
const (
	Base         = "base"
	MinorSecond  = "minor second"
	MajorSecond  = "major second"
	MinorThird   = "minor third"
	MajorThird   = "major third"
	Fourth       = "fourth"
	Tritone      = "tritone"
	Fifth        = "fifth"
	MinorSixth   = "minor sixth"
	MajorSixth   = "major sixth"
	MinorSeventh = "minor seventh"
	MajorSeventh = "major seventh"
	Octave       = "octave"
)

// OrderedTable returns the thirteen intervals by ascending pitch.
func OrderedTable() Table {
	return newTable([]Entry{
		{Base, 1},
		{MinorSecond, 16.0 / 15},
		{MajorSecond, 9.0 / 8},
		{MinorThird, 6.0 / 5},
		{MajorThird, 5.0 / 4},
		{Fourth, 4.0 / 3},
		{Tritone, 45.0 / 32},
		{Fifth, 3.0 / 2},
		{MinorSixth, 8.0 / 5},
		{MajorSixth, 5.0 / 3},
		{MinorSeventh, 9.0 / 5},
		{MajorSeventh, 15.0 / 8},
		{Octave, 2.0 / 1},
	})
}

// NamedTable returns the same intervals ordered by harmonic significance,
// most consonant first.
func NamedTable() Table {
	return newTable([]Entry{
		{Base, 1},
		{Octave, 2.0 / 1},
		{Fifth, 3.0 / 2},
		{Fourth, 4.0 / 3},
		{MajorSixth, 5.0 / 3},
		{MajorThird, 5.0 / 4},
		{MinorThird, 6.0 / 5},
		{MinorSixth, 8.0 / 5},
		{MinorSeventh, 9.0 / 5},
		{MajorSecond, 9.0 / 8},
		{MajorSeventh, 15.0 / 8},
		{MinorSecond, 16.0 / 15},
		{Tritone, 45.0 / 32},
	})
}
