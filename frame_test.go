// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBeaconFrame(ssid string) []byte {
	var b []byte
	b = append(b, 0x80, 0x00) // FC: beacon
	b = append(b, 0x00, 0x00) // duration
	b = append(b, 0x74, 0x42, 0x7f, 0x4d, 0x1d, 0x2d) // addr1
	b = append(b, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60) // addr2
	b = append(b, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60) // addr3 (bssid)
	b = append(b, 0xda, 0xaa)                         // sequence control
	b = append(b, putLE64(1000)...)
	b = append(b, putLE16(100)...)
	b = append(b, putLE16(0x0411)...)
	b = append(b, ssidIE(ssid)...)
	return b
}

func TestDecodeEndToEndBeacon(t *testing.T) {
	raw := fullBeaconFrame("testnet")
	f, err := Decode(raw, false)
	require.NoError(t, err)
	assert.Equal(t, FrameKindBeacon, f.Kind)
	require.NotNil(t, f.Beacon)
	assert.Equal(t, uint64(1000), f.Beacon.Timestamp)
	require.NotNil(t, f.Beacon.StationInfo.SSID)
	assert.Equal(t, "testnet", *f.Beacon.StationInfo.SSID)
	assert.Equal(t, MacAddress{0x74, 0x42, 0x7f, 0x4d, 0x1d, 0x2d}, f.Dest())
	require.NotNil(t, f.BSSID())
	assert.Equal(t, MacAddress{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}, *f.BSSID())
}

func TestDecodeEndToEndBeaconWithFCS(t *testing.T) {
	raw := append(fullBeaconFrame("fcs-net"), 0x01, 0x02, 0x03, 0x04)
	f, err := Decode(raw, true)
	require.NoError(t, err)
	assert.Equal(t, FrameKindBeacon, f.Kind)
}

func TestDecodeEndToEndRTS(t *testing.T) {
	raw := []byte{0xb4, 0x00, 158, 0, 116, 66, 127, 77, 29, 45, 20, 125, 218, 170, 84, 81}
	f, err := Decode(raw, false)
	require.NoError(t, err)
	assert.Equal(t, FrameKindRTS, f.Kind)
	require.NotNil(t, f.RTS)
	assert.Nil(t, f.BSSID())
}

func TestDecodeEndToEndData(t *testing.T) {
	raw := []byte{
		0x08, 0x00, // FC: data, no to_ds/from_ds
		0x00, 0x00,
		0x74, 0x42, 0x7f, 0x4d, 0x1d, 0x2d,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0xda, 0xaa,
		0xde, 0xad, 0xbe, 0xef,
	}
	f, err := Decode(raw, false)
	require.NoError(t, err)
	assert.Equal(t, FrameKindData, f.Kind)
	require.NotNil(t, f.Data)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, f.Data.Payload)
}

func TestDecodeUnhandledExtensionType(t *testing.T) {
	_, err := Decode([]byte{0x0c, 0x00, 0x00, 0x00}, false)
	require.Error(t, err)
	var unhandled *UnhandledFrameSubtypeError
	require.ErrorAs(t, err, &unhandled)
}

func TestDecodeIncompleteFCSStrippedBelowMinimum(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02}, true)
	require.Error(t, err)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
}

func TestDecodeWithOptionsStrictRejectsTrailingBytes(t *testing.T) {
	raw := fullBeaconFrame("strict-net")
	raw = append(raw, 0x01, 0x02, 0x03) // <4-byte trailing remainder

	_, err := DecodeWithOptions(raw, DecodeOptions{Strict: true})
	require.Error(t, err)
	var failure *FailureError
	require.ErrorAs(t, err, &failure)

	f, err := DecodeWithOptions(raw, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, f.Beacon.StationInfo.TrailingBytes)
}
