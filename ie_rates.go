// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// SupportedRate is a single entry of the Supported Rates / Extended
// Supported Rates information elements (§4.5.1): a rate in Mbps plus
// whether the BSS requires it (the mandatory bit).
type SupportedRate struct {
	Rate      float64 // Mbps
	Mandatory bool
}

// BitsPerSecond converts the advertised Mbps rate to a Rate value.
func (r SupportedRate) BitsPerSecond() Rate {
	return Rate(r.Rate * float64(MB))
}

func decodeSupportedRates(data []byte) []SupportedRate {
	rates := make([]SupportedRate, 0, len(data))
	for _, b := range data {
		rates = append(rates, SupportedRate{
			Rate:      float64(b&0x7F) / 2.0,
			Mandatory: b&0x80 != 0,
		})
	}
	return rates
}

func encodeSupportedRates(rates []SupportedRate) []byte {
	b := make([]byte, len(rates))
	for i, r := range rates {
		v := uint8(r.Rate*2.0) & 0x7F
		if r.Mandatory {
			v |= 0x80
		}
		b[i] = v
	}
	return b
}
