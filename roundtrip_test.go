// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// genMacAddress produces an arbitrary 6-byte address.
func genMacAddress(t *rapid.T, label string) MacAddress {
	var m MacAddress
	bytes := rapid.SliceOfN(rapid.Uint8(), 6, 6).Draw(t, label)
	copy(m[:], bytes)
	return m
}

// TestRoundTripRTSFrame exercises spec.md §8's encoder symmetry law for the
// simplest variant: decode(encode(v)) == v for arbitrary field values.
func TestRoundTripRTSFrame(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fc, err := DecodeFrameControl([]byte{0xb4, 0x00})
		require.NoError(t, err)

		original := RTSFrame{
			FrameControl: fc,
			Duration:     rapid.Uint16().Draw(t, "duration"),
			Address1:     genMacAddress(t, "addr1"),
			Address2:     genMacAddress(t, "addr2"),
		}

		decoded, err := decodeRTSFrame(fc, original.Encode())
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})
}

// TestRoundTripSequenceControl checks every (fragment, sequence) pair
// round-trips through Encode/DecodeSequenceControl byte-exact.
func TestRoundTripSequenceControl(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := SequenceControl{
			FragmentNumber: uint8(rapid.IntRange(0, 15).Draw(t, "frag")),
			SequenceNumber: uint16(rapid.IntRange(0, 4095).Draw(t, "seq")),
		}
		decoded, err := DecodeSequenceControl(original.Encode())
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})
}

// TestRoundTripSupportedRates checks arbitrary rate lists survive
// decode(encode(v)).
func TestRoundTripSupportedRates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		rates := make([]SupportedRate, n)
		for i := range rates {
			rates[i] = SupportedRate{
				Rate:      float64(rapid.IntRange(0, 127).Draw(t, "half-mbps")) / 2.0,
				Mandatory: rapid.Bool().Draw(t, "mandatory"),
			}
		}
		decoded := decodeSupportedRates(encodeSupportedRates(rates))
		require.Equal(t, rates, decoded)
	})
}

// TestRoundTripExtendedCapabilities checks the 90-bit bitmap survives
// decode(encode(v)) for arbitrary flag combinations.
func TestRoundTripExtendedCapabilities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := ExtendedCapabilities{
			BSSCoexistenceManagement:   rapid.Bool().Draw(t, "f0"),
			ExtendedChannelSwitching:   rapid.Bool().Draw(t, "f2"),
			BSSTransition:              rapid.Bool().Draw(t, "f19"),
			ServiceIntervalGranularity: uint8(rapid.IntRange(0, 7).Draw(t, "sig")),
			MaxNumberOfMSDUsInAMSDU:    uint8(rapid.IntRange(0, 3).Draw(t, "maxmsdu")),
			FutureChannelGuidance:      rapid.Bool().Draw(t, "f74"),
		}
		encoded := encodeExtendedCapabilities(c)
		decoded, err := decodeExtendedCapabilities(encoded)
		require.NoError(t, err)
		require.Equal(t, c, decoded)
	})
}

// TestRoundTripBlockAckControl checks every (policy, mode, tid) combination
// the wire format can express survives decode(encode(v)).
func TestRoundTripBlockAckControl(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		modes := []BlockAckMode{BlockAckModeBasic, BlockAckModeCompressed, BlockAckModeReserved, BlockAckModeMultiTid}
		original := blockAckControl{
			Policy: rapid.Bool().Draw(t, "policy"),
			Mode:   modes[rapid.IntRange(0, 3).Draw(t, "mode")],
			TID:    uint8(rapid.IntRange(0, 15).Draw(t, "tid")),
		}
		decoded := decodeBlockAckControl(encodeBlockAckControl(original))
		require.Equal(t, original, decoded)
	})
}
