// Package analysis inspects metric time series recorded over a run.
//
//   - [PowerSpectrum]: magnitude spectrum of a series, mean removed and Hann
//     windowed
//   - [DominantPeriod]: period in frames of the strongest non-constant
//     component
//
// The headless runner uses these to report oscillation of the kinetic
// energy as the disk collapses and rebounds.
package analysis
