// Package signal provides stateless block utilities used around the
// equalizer cascade: peak and RMS normalization to a target level, and
// linear fade-in/fade-out envelopes. All functions return a new slice and
// leave their input untouched.
package signal
