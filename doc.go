// Package eventfft maintains the two-dimensional discrete Fourier transform
// of a binary N×N frame under a stream of point and batch pixel mutations.
//
// An Engine builds a persistent radix-2 decimation-in-frequency tree over
// the frame once, via Initialize, and thereafter recomputes only the
// butterflies on the ancestor path of a changed pixel. The top-level
// transform is available at any time via FFT without recomputing it from
// scratch.
package eventfft
