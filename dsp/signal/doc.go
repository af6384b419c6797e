// Package signal synthesizes fixed-length integer sine tones and additive
// tone stacks.
//
// A Generator carries the sample format (rate, amplitude, bit depth,
// channels, duration) as a core.ToneConfig. Tone renders one frequency;
// Stack renders several and averages them sample by sample. Both return a
// Waveform whose mono samples are duplicated across channels only when the
// output asks for its interleaved form.
package signal
