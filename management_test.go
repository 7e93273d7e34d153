// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManagementHeader() ManagementHeader {
	fc := managementFrameControl()
	h, _, _ := decodeManagementHeader(fc, []byte{
		0x00, 0x00,
		0x74, 0x42, 0x7f, 0x4d, 0x1d, 0x2d,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0xda, 0xaa,
	})
	return h
}

func ssidIE(ssid string) []byte {
	return append([]byte{0, byte(len(ssid))}, []byte(ssid)...)
}

func TestBeaconRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 12)
	rest = append(rest, putLE64(0x0102030405060708)...)
	rest = append(rest, putLE16(100)...)
	rest = append(rest, putLE16(0x0411)...)
	rest = append(rest, ssidIE("my-network")...)

	b, err := decodeBeacon(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), b.Timestamp)
	assert.Equal(t, uint16(100), b.BeaconInterval)
	assert.Equal(t, uint16(0x0411), b.CapabilityInfo)
	require.NotNil(t, b.StationInfo.SSID)
	assert.Equal(t, "my-network", *b.StationInfo.SSID)
	assert.Equal(t, rest, b.Encode())
	assert.Equal(t, h.Dest(), b.Dest())
}

func TestProbeResponseSharesBeaconShape(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 12)
	rest = append(rest, putLE64(42)...)
	rest = append(rest, putLE16(100)...)
	rest = append(rest, putLE16(0)...)
	rest = append(rest, ssidIE("probe-net")...)

	pr, err := decodeProbeResponse(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), pr.Timestamp)
	assert.Equal(t, rest, pr.Encode())
}

func TestProbeRequestRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := ssidIE("probing")
	pr, err := decodeProbeRequest(h, rest)
	require.NoError(t, err)
	require.NotNil(t, pr.StationInfo.SSID)
	assert.Equal(t, "probing", *pr.StationInfo.SSID)
	assert.Equal(t, rest, pr.Encode())
}

func TestAssociationRequestRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 4)
	rest = append(rest, putLE16(100)...)
	rest = append(rest, putLE16(0x0411)...)
	rest = append(rest, ssidIE("assoc")...)

	ar, err := decodeAssociationRequest(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(100), ar.BeaconInterval)
	assert.Equal(t, uint16(0x0411), ar.CapabilityInfo)
	assert.Equal(t, rest, ar.Encode())
}

func TestReassociationRequestUsesCurrentAPAddressSlot(t *testing.T) {
	h := testManagementHeader()
	ap := MacAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	rest := make([]byte, 0, 8)
	rest = append(rest, ap[:]...)
	rest = append(rest, putLE16(0x0411)...)
	rest = append(rest, ssidIE("reassoc")...)

	rr, err := decodeReassociationRequest(h, rest)
	require.NoError(t, err)
	assert.Equal(t, ap, rr.CurrentAPAddress)
	assert.Equal(t, uint16(0x0411), rr.CapabilityInfo)
	assert.Equal(t, rest, rr.Encode())
}

func TestAssociationResponseRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 6)
	rest = append(rest, putLE16(0x0411)...)
	rest = append(rest, putLE16(0)...)
	rest = append(rest, putLE16(5)...)
	rest = append(rest, ssidIE("resp")...)

	ar, err := decodeAssociationResponse(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0411), ar.CapabilityInfo)
	assert.Equal(t, uint16(0), ar.StatusCode)
	assert.Equal(t, uint16(5), ar.AssociationID)
	assert.Equal(t, rest, ar.Encode())
}

func TestReassociationResponseSharesAssociationResponseShape(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 6)
	rest = append(rest, putLE16(0x0411)...)
	rest = append(rest, putLE16(0)...)
	rest = append(rest, putLE16(7)...)

	rr, err := decodeReassociationResponse(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), rr.AssociationID)
	assert.Equal(t, rest, rr.Encode())
}

func TestAuthenticationRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := make([]byte, 0, 6)
	rest = append(rest, putLE16(0)...) // open system
	rest = append(rest, putLE16(1)...)
	rest = append(rest, putLE16(0)...)

	auth, err := decodeAuthentication(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), auth.Algorithm)
	assert.Equal(t, uint16(1), auth.SequenceNumber)
	assert.Equal(t, rest, auth.Encode())
}

func TestDeauthenticationRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := putLE16(3)
	d, err := decodeDeauthentication(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), d.ReasonCode)
	assert.Equal(t, rest, d.Encode())
}

func TestDisassociationSharesDeauthenticationShape(t *testing.T) {
	h := testManagementHeader()
	rest := putLE16(8)
	d, err := decodeDisassociation(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(8), d.ReasonCode)
	assert.Equal(t, rest, d.Encode())
}

func TestActionRoundTrip(t *testing.T) {
	h := testManagementHeader()
	rest := []byte{0x03, 0x01, 0x02, 0x03}
	a, err := decodeAction(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x03), a.Category)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, a.Body)
	assert.Equal(t, rest, a.Encode())
}

func TestActionNoAckSharesActionShape(t *testing.T) {
	h := testManagementHeader()
	rest := []byte{0x01, 0xff}
	a, err := decodeActionNoAck(h, rest)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), a.Category)
	assert.Equal(t, rest, a.Encode())
}
