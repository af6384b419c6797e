// Package interval provides just-intonation interval ratios and the
// harmonic series they produce when scaled by a base frequency.
//
// Two fixed tables cover the same thirteen intervals from unison to octave:
// OrderedTable lists them by ascending pitch, NamedTable by consonance
// (octave, fifth, fourth, ...). Ratios are double-precision values of exact
// fraction literals; at audio rates no rational arithmetic is needed.
//
//	s, err := interval.Build(256, interval.OrderedTable())
//	fifth, _ := s.Frequency(interval.Fifth) // 384
package interval
