// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// WpsSetupState is the WPS setup state (element type 0x1057).
type WpsSetupState uint8

const (
	WpsSetupStateUnconfigured WpsSetupState = 1
	WpsSetupStateConfigured   WpsSetupState = 2
)

func (s WpsSetupState) String() string {
	switch s {
	case WpsSetupStateUnconfigured:
		return "Unconfigured"
	case WpsSetupStateConfigured:
		return "Configured"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// Category names a WPS Primary Device Type category (element type
// 0x1054). Only the common device categories are given names; anything
// else is preserved in Unknown.
type Category struct {
	Name        string
	Category    uint16
	Subcategory uint16
}

func (c Category) IsUnknown() bool { return c.Name == "" }

func (c Category) String() string {
	if c.IsUnknown() {
		return fmt.Sprintf("Unknown(category=%d, subcategory=%d)", c.Category, c.Subcategory)
	}
	return c.Name
}

var wpsCategoryNames = map[uint16]string{
	1:  "Computer",
	2:  "Input",
	3:  "Printer",
	4:  "Camera",
	5:  "Storage",
	6:  "NetworkInfrastructure",
	7:  "Display",
	8:  "Multimedia",
	9:  "Gaming",
	10: "Telephone",
	11: "Audio",
	12: "Docking",
}

func decodeWpsCategory(category, subcategory uint16) Category {
	name, ok := wpsCategoryNames[category]
	if !ok {
		return Category{Category: category, Subcategory: subcategory}
	}
	return Category{Name: name, Category: category, Subcategory: subcategory}
}

// WPSInformation is the decoded WPS vendor element payload (the bytes
// following the 00-50-F2/04 OUI+type prefix inside element 221): a
// nested stream of big-endian (type uint16, length uint16, value) TLVs.
// Recognized types populate named fields; everything else is dropped,
// matching spec.md §4.5's soft-fail policy for this element.
type WPSInformation struct {
	SetupState        *WpsSetupState
	Manufacturer      string
	Model             string
	ModelNumber       string
	SerialNumber      string
	PrimaryDeviceType *Category
	DeviceName        string
}

const (
	wpsElementSetupState        = 0x1057
	wpsElementManufacturer      = 0x1021
	wpsElementModel             = 0x1023
	wpsElementModelNumber       = 0x1024
	wpsElementSerialNumber      = 0x1042
	wpsElementPrimaryDeviceType = 0x1054
	wpsElementDeviceName        = 0x1011
)

func decodeWPSInformation(data []byte) (WPSInformation, error) {
	var info WPSInformation
	for len(data) >= 4 {
		typ := uint16(data[0])<<8 | uint16(data[1])
		length := int(uint16(data[2])<<8 | uint16(data[3]))
		data = data[4:]
		if length > len(data) {
			length = len(data)
		}
		value := data[:length]
		data = data[length:]

		switch typ {
		case wpsElementSetupState:
			if len(value) >= 1 {
				s := WpsSetupState(value[0])
				info.SetupState = &s
			}
		case wpsElementManufacturer:
			info.Manufacturer = string(value)
		case wpsElementModel:
			info.Model = string(value)
		case wpsElementModelNumber:
			info.ModelNumber = string(value)
		case wpsElementSerialNumber:
			info.SerialNumber = string(value)
		case wpsElementPrimaryDeviceType:
			if len(value) >= 8 {
				category := uint16(value[0])<<8 | uint16(value[1])
				subcategory := uint16(value[6])<<8 | uint16(value[7])
				c := decodeWpsCategory(category, subcategory)
				info.PrimaryDeviceType = &c
			}
		case wpsElementDeviceName:
			info.DeviceName = string(value)
		}
	}
	return info, nil
}

func encodeWPSInformation(info WPSInformation) []byte {
	var b []byte
	appendTLV := func(typ uint16, value []byte) {
		b = append(b, byte(typ>>8), byte(typ))
		n := uint16(len(value))
		b = append(b, byte(n>>8), byte(n))
		b = append(b, value...)
	}

	if info.SetupState != nil {
		appendTLV(wpsElementSetupState, []byte{byte(*info.SetupState)})
	}
	if info.Manufacturer != "" {
		appendTLV(wpsElementManufacturer, []byte(info.Manufacturer))
	}
	if info.Model != "" {
		appendTLV(wpsElementModel, []byte(info.Model))
	}
	if info.ModelNumber != "" {
		appendTLV(wpsElementModelNumber, []byte(info.ModelNumber))
	}
	if info.SerialNumber != "" {
		appendTLV(wpsElementSerialNumber, []byte(info.SerialNumber))
	}
	if info.PrimaryDeviceType != nil {
		c := info.PrimaryDeviceType
		value := make([]byte, 8)
		value[0], value[1] = byte(c.Category>>8), byte(c.Category)
		value[2], value[3], value[4], value[5] = 0x00, 0x50, 0xF2, 0x04
		value[6], value[7] = byte(c.Subcategory>>8), byte(c.Subcategory)
		appendTLV(wpsElementPrimaryDeviceType, value)
	}
	if info.DeviceName != "" {
		appendTLV(wpsElementDeviceName, []byte(info.DeviceName))
	}
	return b
}
