// Package jams implements the JAMS (JSON Annotated Music Specification)
// object model and its on-disk encodings.
//
// A JAMS object bundles time-aligned annotations for one audio file with
// file-level metadata and a free-form sandbox. This package reads and writes
// the JSON form (.jams) and its gzip-compressed variant (.jamz). It does not
// validate annotation namespaces or observation values; unknown content is
// preserved as decoded JSON values.
//
//	jam, err := jams.Load("track.jams")
//	if err != nil {
//		return err
//	}
//	jam.Sandbox.Set("reviewed", true)
//	return jams.Save(jam, "track.jamz")
package jams
