// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// Encode80211Fc packs the eleven Frame Control sub-fields into the raw
// 16-bit little-endian word defined by the standard. It is the low-level
// bit-packing primitive underneath FrameControl.Encode; most callers
// want the typed FrameControl decoder in framecontrol.go instead.
func Encode80211Fc(version, ftype, subtype, tds, fds, mf, rt, pm, md, wep, order uint16) uint16 {
	return (order << 15) | (wep << 14) |
		(md << 13) | (pm << 12) |
		(rt << 11) | (mf << 10) |
		(fds << 9) | (tds << 8) |
		(subtype << 4) | (ftype << 2) | version
}

// Decode80211Fc unpacks the raw 16-bit Frame Control word into its eleven
// sub-fields, in the same order Encode80211Fc accepts them.
func Decode80211Fc(encoded uint16) [11]uint16 {
	return [11]uint16{
		encoded & 3,         // version
		(encoded >> 2) & 3,  // ftype
		(encoded >> 4) & 15, // subtype
		(encoded >> 8) & 1,  // tds
		(encoded >> 9) & 1,  // fds
		(encoded >> 10) & 1, // mf
		(encoded >> 11) & 1, // rt
		(encoded >> 12) & 1, // pm
		(encoded >> 13) & 1, // md
		(encoded >> 14) & 1, // wep
		(encoded >> 15) & 1, // order
	}
}
