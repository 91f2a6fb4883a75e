// Package credit screens credit-card applications.
//
// An Evaluator classifies an Application as auto-accepted, auto-declined or
// referred to a human. Besides the application's own fields it consults one
// external capability, a frequent-flyer number Validator, which it never
// owns. The evaluator calls the validator at most once per evaluation and
// never for an absent number, so strict validators that reject unexpected
// input are safe to plug in.
package credit
