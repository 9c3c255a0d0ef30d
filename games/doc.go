// Package games enumerates and deals the number selections a countdown
// numbers round is played with.
//
// A game is a sorted list of source numbers drawn from a selection of "big"
// and "small" numbers. The classic selection holds the four big numbers
// 25, 50, 75 and 100 once each, and the small numbers 1 through 9 twice each.
//
//   - Choices / All enumerate every distinct count-subset of a selection, in
//     ascending lexicographic order. Repeated values in the selection are
//     collapsed, so {1, 1, 2} choose 2 yields [1 1] and [1 2] once each.
//   - Deal draws one game at random following a pattern such as "BBssss"
//     (two big, four small), the way the presets of the game show do.
//   - PickTarget chooses a random achievable target for a dealt game.
//
// Enumeration is deterministic; Deal and PickTarget take an explicit
// *rand.Rand so callers control seeding.
package games
