// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeStationInfoSimpleFields hand-constructs a stream of the
// byte-exact (no sub-struct) IEs and checks both the dispatch and the
// re-encode produce the original bytes.
func TestDecodeStationInfoSimpleFields(t *testing.T) {
	var raw []byte
	raw = append(raw, 0, 6, 'm', 'y', 's', 's', 'i', 'd')                       // SSID
	raw = append(raw, 1, 4, Rate1M|0x80, Rate2M, Rate5_5M, Rate11M)             // SupportedRates
	raw = append(raw, 3, 1, 6)                                                 // DSParameterSet: channel 6
	raw = append(raw, 5, 3, 0x00, 0x01, 0xff)                                  // TIM
	raw = append(raw, 6, 2, 0x34, 0x12)                                        // IBSSParameterSet = 0x1234
	raw = append(raw, 7, 3, 'U', 'S', 0x20)                                    // CountryInfo
	raw = append(raw, 32, 1, 3)                                                // PowerConstraint
	raw = append(raw, 37, 3, 0, 6, 3)                                          // ChannelSwitch (trails power
	// constraint so its 3-byte IE isn't the final <4-byte remainder the walker stops on)

	info, err := decodeStationInfo(raw)
	require.NoError(t, err)

	require.NotNil(t, info.SSID)
	assert.Equal(t, "myssid", *info.SSID)
	require.Len(t, info.SupportedRates, 4)
	assert.True(t, info.SupportedRates[0].Mandatory)
	assert.Equal(t, 1.0, info.SupportedRates[0].Rate)

	require.NotNil(t, info.DSParameterSet)
	assert.Equal(t, uint8(6), *info.DSParameterSet)
	ch, ok := info.Channel()
	assert.True(t, ok)
	assert.Equal(t, uint8(6), ch)

	assert.Equal(t, []byte{0x00, 0x01, 0xff}, info.TIM)

	require.NotNil(t, info.IBSSParameterSet)
	assert.Equal(t, uint16(0x1234), *info.IBSSParameterSet)

	assert.Equal(t, []byte{'U', 'S', 0x20}, info.CountryInfo)

	require.NotNil(t, info.PowerConstraint)
	assert.Equal(t, uint8(3), *info.PowerConstraint)

	require.NotNil(t, info.ChannelSwitch)
	assert.Equal(t, ChannelSwitchAnnouncement{Mode: ChannelSwitchUnrestricted, NewChannel: 6, Count: 3}, *info.ChannelSwitch)

	assert.Empty(t, info.TrailingBytes)
	assert.Equal(t, raw, encodeStationInfo(info))
}

// TestStationInfoRoundTripComplexFields builds a StationInfo with every
// non-vendor sub-struct field populated via Go literals (not hand-encoded
// bytes; WPA/WPS are covered by TestStationInfoVendorDispatch),
// then checks encode->decode reproduces the same values. This exercises
// the dispatch table without re-verifying the sub-parsers' own bit math
// (covered by their dedicated _test.go files).
func TestStationInfoRoundTripComplexFields(t *testing.T) {
	rsn := RSNInformation{
		Version:              1,
		GroupCipherSuite:     decodeRsnCipherSuite([]byte{0x00, 0x0F, 0xAC, 0x04}),
		PairwiseCipherSuites: []RsnCipherSuite{decodeRsnCipherSuite([]byte{0x00, 0x0F, 0xAC, 0x04})},
		AKMSuites:            []RsnAkmSuite{decodeRsnAkmSuite([]byte{0x00, 0x0F, 0xAC, 0x02})},
		MFPCapable:           true,
	}
	ht := HTCapabilities{LDPCCodingCapability: true, ShortGI40MHz: true, RxSTBC: 2}
	htInfo := HTInformation{PrimaryChannel: 6, SecondaryChannelOffset: 1, SupportedChannelWidth: true}
	cs := ChannelSwitchAnnouncement{Mode: ChannelSwitchRestrict, NewChannel: 11, Count: 3}
	mb := MultipleBSSID{MaxBSSIDIndicator: 4, Rest: []byte{0xaa, 0xbb}}
	ec := ExtendedCapabilities{BSSCoexistenceManagement: true, MaxNumberOfMSDUsInAMSDU: 2}

	info := StationInfo{
		ChannelSwitch:          &cs,
		HTCapabilities:         &ht,
		RSNInformation:         &rsn,
		ExtendedSupportedRates: []SupportedRate{{Rate: 6, Mandatory: false}},
		HTInformation:          &htInfo,
		MultipleBSSID:          &mb,
		ExtendedCapabilities:   &ec,
		VHTCapabilities:        []byte{0x01, 0x02, 0x03, 0x04},
	}

	encoded := encodeStationInfo(info)
	decoded, err := decodeStationInfo(encoded)
	require.NoError(t, err)

	require.NotNil(t, decoded.ChannelSwitch)
	assert.Equal(t, cs, *decoded.ChannelSwitch)
	require.NotNil(t, decoded.HTCapabilities)
	assert.Equal(t, ht, *decoded.HTCapabilities)
	require.NotNil(t, decoded.RSNInformation)
	assert.Equal(t, rsn, *decoded.RSNInformation)
	assert.Equal(t, info.ExtendedSupportedRates, decoded.ExtendedSupportedRates)
	require.NotNil(t, decoded.HTInformation)
	assert.Equal(t, htInfo, *decoded.HTInformation)
	require.NotNil(t, decoded.MultipleBSSID)
	assert.Equal(t, mb, *decoded.MultipleBSSID)
	require.NotNil(t, decoded.ExtendedCapabilities)
	assert.Equal(t, ec, *decoded.ExtendedCapabilities)
	assert.Equal(t, info.VHTCapabilities, decoded.VHTCapabilities)
	assert.Empty(t, decoded.TrailingBytes)
}

// TestStationInfoVendorDispatch checks the element-221 OUI+type dispatch
// among WPA1, WPS, and unrecognized vendor IEs.
func TestStationInfoVendorDispatch(t *testing.T) {
	wpa := WPAInformation{
		Version:              1,
		MulticastCipherSuite: decodeWpaCipherSuite([]byte{0x00, 0x50, 0xF2, 0x02}),
		UnicastCipherSuites:  []WpaCipherSuite{decodeWpaCipherSuite([]byte{0x00, 0x50, 0xF2, 0x04})},
		AKMSuites:            []WpaAkmSuite{decodeWpaAkmSuite([]byte{0x00, 0x50, 0xF2, 0x02})},
	}
	state := WpsSetupStateConfigured
	wps := WPSInformation{SetupState: &state, Manufacturer: "Acme Co"}

	var raw []byte
	wpaPayload := append(append([]byte{}, wpsOUI[:]...), wpaOUIType)
	wpaPayload = append(wpaPayload, encodeWPAInformation(wpa)...)
	raw = append(raw, 221, uint8(len(wpaPayload)))
	raw = append(raw, wpaPayload...)

	wpsPayload := append(append([]byte{}, wpsOUI[:]...), wpsOUIType)
	wpsPayload = append(wpsPayload, encodeWPSInformation(wps)...)
	raw = append(raw, 221, uint8(len(wpsPayload)))
	raw = append(raw, wpsPayload...)

	otherOUI := [3]byte{0x00, 0x11, 0x22}
	vendorPayload := append(append([]byte{}, otherOUI[:]...), 0x05, 0xca, 0xfe)
	raw = append(raw, 221, uint8(len(vendorPayload)))
	raw = append(raw, vendorPayload...)

	info, err := decodeStationInfo(raw)
	require.NoError(t, err)

	require.NotNil(t, info.WPAInformation)
	assert.Equal(t, wpa, *info.WPAInformation)

	require.NotNil(t, info.WPSInformation)
	require.NotNil(t, info.WPSInformation.SetupState)
	assert.Equal(t, WpsSetupStateConfigured, *info.WPSInformation.SetupState)
	assert.Equal(t, "Acme Co", info.WPSInformation.Manufacturer)

	require.Len(t, info.VendorSpecific, 1)
	assert.Equal(t, otherOUI, info.VendorSpecific[0].OUI)
	assert.Equal(t, uint8(0x05), info.VendorSpecific[0].OUIType)
	assert.Equal(t, []byte{0xca, 0xfe}, info.VendorSpecific[0].Data)

	assert.Equal(t, raw, encodeStationInfo(info))
}

// TestStationInfoMalformedWPAIsHardFailure checks the one carve-out
// where an unparseable IE aborts the whole decode instead of being
// silently dropped: a vendor IE that claims the WPA1 OUI/type but is
// too short to parse.
func TestStationInfoMalformedWPAIsHardFailure(t *testing.T) {
	var raw []byte
	payload := append(append([]byte{}, wpsOUI[:]...), wpaOUIType, 0x01, 0x02) // too short
	raw = append(raw, 221, uint8(len(payload)))
	raw = append(raw, payload...)

	_, err := decodeStationInfo(raw)
	require.Error(t, err)
	var failure *FailureError
	require.ErrorAs(t, err, &failure)
}

// TestStationInfoExtensionTags checks element-255 dispatch: HE
// Capabilities at sub-id 35 gets its own field, anything else becomes a
// residual ExtensionTag.
func TestStationInfoExtensionTags(t *testing.T) {
	var raw []byte
	raw = append(raw, 255, 3, extensionIDHECapabilities, 0xaa, 0xbb)
	raw = append(raw, 255, 2, 0x01, 0x99)

	info, err := decodeStationInfo(raw)
	require.NoError(t, err)

	assert.Equal(t, []byte{extensionIDHECapabilities, 0xaa, 0xbb}, info.HECapabilities)
	require.Len(t, info.ExtensionTags, 1)
	assert.Equal(t, uint8(0x01), info.ExtensionTags[0].ExtensionID)
	assert.Equal(t, []byte{0x99}, info.ExtensionTags[0].Payload)

	assert.Equal(t, raw, encodeStationInfo(info))
}

// TestStationInfoResidualPreservesUnknownIEs checks an IE id with no
// typed field round-trips verbatim.
func TestStationInfoResidualPreservesUnknownIEs(t *testing.T) {
	raw := []byte{200, 2, 0x01, 0x02}
	info, err := decodeStationInfo(raw)
	require.NoError(t, err)
	require.Len(t, info.Residual, 1)
	assert.Equal(t, uint8(200), info.Residual[0].ID)
	assert.Equal(t, []byte{0x01, 0x02}, info.Residual[0].Payload)
	assert.Equal(t, raw, encodeStationInfo(info))
}

// TestStationInfoTrailingBytes checks the <4-byte termination rule: the
// walk stops as soon as fewer than 4 bytes remain, and the remainder is
// preserved rather than discarded.
func TestStationInfoTrailingBytes(t *testing.T) {
	raw := append(ssidIE("net"), 0x01, 0x02, 0x03)
	info, err := decodeStationInfo(raw)
	require.NoError(t, err)
	require.NotNil(t, info.SSID)
	assert.Equal(t, "net", *info.SSID)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, info.TrailingBytes)
	assert.Equal(t, raw, encodeStationInfo(info))
}

// TestStationInfoSSIDDisplay checks the three SSID presentation states:
// absent, visible, and hidden (zero-length but advertised non-zero).
func TestStationInfoSSIDDisplay(t *testing.T) {
	assert.Equal(t, "", StationInfo{}.SSIDDisplay())

	ssid := "home-network"
	assert.Equal(t, "home-network", StationInfo{SSID: &ssid}.SSIDDisplay())

	empty := ""
	n := 9
	assert.Equal(t, "<hidden: 9>", StationInfo{SSID: &empty, SSIDLength: &n}.SSIDDisplay())
}
