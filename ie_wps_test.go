// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWPSInformationRoundTrip(t *testing.T) {
	state := WpsSetupStateConfigured
	cat := decodeWpsCategory(6, 1)
	info := WPSInformation{
		SetupState:        &state,
		Manufacturer:      "Acme Networks",
		Model:             "AX3000",
		ModelNumber:       "v2",
		SerialNumber:      "00112233",
		PrimaryDeviceType: &cat,
		DeviceName:        "living-room-ap",
	}

	encoded := encodeWPSInformation(info)
	decoded, err := decodeWPSInformation(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded.SetupState)
	assert.Equal(t, WpsSetupStateConfigured, *decoded.SetupState)
	assert.Equal(t, info.Manufacturer, decoded.Manufacturer)
	assert.Equal(t, info.Model, decoded.Model)
	assert.Equal(t, info.ModelNumber, decoded.ModelNumber)
	assert.Equal(t, info.SerialNumber, decoded.SerialNumber)
	require.NotNil(t, decoded.PrimaryDeviceType)
	assert.Equal(t, "NetworkInfrastructure", decoded.PrimaryDeviceType.Name)
	assert.Equal(t, uint16(6), decoded.PrimaryDeviceType.Category)
	assert.Equal(t, uint16(1), decoded.PrimaryDeviceType.Subcategory)
	assert.Equal(t, info.DeviceName, decoded.DeviceName)
}

func TestDecodeWpsCategoryUnknown(t *testing.T) {
	c := decodeWpsCategory(99, 2)
	assert.True(t, c.IsUnknown())
	assert.Contains(t, c.String(), "Unknown")
}

func TestWpsSetupStateString(t *testing.T) {
	assert.Equal(t, "Configured", WpsSetupStateConfigured.String())
	assert.Equal(t, "Unconfigured", WpsSetupStateUnconfigured.String())
	assert.Contains(t, WpsSetupState(9).String(), "Unknown")
}
