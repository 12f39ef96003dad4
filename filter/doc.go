// Package filter decides whether a decoded graph's measured value should be
// forwarded to stdout, mirroring the four-case shouldOutput switch from the
// original circumferenceChecker: a plain "-o" equality test, a "-d" equality
// test against n-value, and a "-f" forbidden-length membership test against
// the accumulated frequency table, each optionally negated by "-C".
package filter
