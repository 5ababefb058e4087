// Package wordscan finds the first or last non-zero 64-bit word in a word
// array.
//
// Three kernels are available and all of them return identical results:
//
//   - Scalar - tests one word at a time;
//   - Wide2  - OR-reduces pairs of words before testing (SSE2 / NEON class CPUs);
//   - Wide4  - OR-reduces groups of four words before testing (AVX2 class CPUs).
//
// A kernel is selected once at package init from the CPU features reported by
// golang.org/x/sys/cpu. The VEB_WORDSCAN environment variable (scalar, wide2
// or wide4) overrides the detection.
package wordscan
