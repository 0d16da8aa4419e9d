// Package design provides the peaking-EQ biquad coefficient designer.
//
// [Peak] maps perceptual parameters (center frequency, gain in dB, Q) to
// normalized second-order-section coefficients consumable by eq/biquad for
// runtime processing. The design follows the RBJ Audio EQ Cookbook peaking
// formula. All functions are pure; invalid parameters are reported via
// [ErrInvalidParameter] rather than silently clamped.
package design
