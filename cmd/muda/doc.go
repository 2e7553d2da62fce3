// Command muda packs audio into JAMS annotation files and inspects or edits
// the muda sandbox they carry.
//
// Usage:
//
//	muda load track.jams track.wav --sr 22050 -o packed.jams
//	muda inspect packed.jams
//	muda pack packed.jams pitch_shift=2 'history=[{"op":"pitch"}]'
//	muda pop packed.jams pitch_shift --format yaml
//	muda export packed.jams --audio out.wav --jam out.jams
//	muda config show
//
// A TOML file given with --config supplies default decode and log
// settings; flags given on the command line win.
package main
