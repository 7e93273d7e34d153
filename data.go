// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// DataFrame is a Data (or CF-Ack/CF-Poll variant) frame: a DataHeader
// followed by an MSDU. When the MSDU is recognizable LLC/SNAP bridged
// traffic, Bridged is populated; otherwise Payload holds the raw bytes
// verbatim. §4.7/§4.9.
type DataFrame struct {
	Header  DataHeader
	Bridged *BridgedPayload
	Payload []byte
}

func decodeDataFrame(header DataHeader, rest []byte) (DataFrame, error) {
	f := DataFrame{Header: header}
	if bridged, ok := decodeBridgedPayload(rest); ok {
		f.Bridged = &bridged
	} else {
		f.Payload = append([]byte(nil), rest...)
	}
	return f, nil
}

func (f DataFrame) Encode() []byte {
	if f.Bridged != nil {
		return encodeBridgedPayload(*f.Bridged)
	}
	return append([]byte(nil), f.Payload...)
}

func (f DataFrame) Src() *MacAddress  { return f.Header.Src() }
func (f DataFrame) Dest() MacAddress  { return f.Header.Dest() }
func (f DataFrame) BSSID() *MacAddress { return f.Header.BSSID() }

// QosDataFrame has the identical wire shape to DataFrame, differing
// only in the QoS Control field already parsed into Header.QoS. §4.9.
type QosDataFrame struct {
	Header  DataHeader
	Bridged *BridgedPayload
	Payload []byte
}

func decodeQosDataFrame(header DataHeader, rest []byte) (QosDataFrame, error) {
	d, err := decodeDataFrame(header, rest)
	if err != nil {
		return QosDataFrame{}, err
	}
	return QosDataFrame(d), nil
}

func (f QosDataFrame) Encode() []byte {
	return DataFrame(f).Encode()
}

func (f QosDataFrame) Src() *MacAddress  { return f.Header.Src() }
func (f QosDataFrame) Dest() MacAddress  { return f.Header.Dest() }
func (f QosDataFrame) BSSID() *MacAddress { return f.Header.BSSID() }

// NullDataFrame carries a DataHeader and no body: it exists purely to
// communicate power-management state transitions. §4.9.
type NullDataFrame struct {
	Header DataHeader
}

func decodeNullDataFrame(header DataHeader) (NullDataFrame, error) {
	return NullDataFrame{Header: header}, nil
}

func (f NullDataFrame) Encode() []byte { return nil }

func (f NullDataFrame) Src() *MacAddress  { return f.Header.Src() }
func (f NullDataFrame) Dest() MacAddress  { return f.Header.Dest() }
func (f NullDataFrame) BSSID() *MacAddress { return f.Header.BSSID() }

// QosNullFrame has the identical wire shape to NullDataFrame. §4.9.
type QosNullFrame struct {
	Header DataHeader
}

func decodeQosNullFrame(header DataHeader) (QosNullFrame, error) {
	return QosNullFrame{Header: header}, nil
}

func (f QosNullFrame) Encode() []byte { return nil }

func (f QosNullFrame) Src() *MacAddress  { return f.Header.Src() }
func (f QosNullFrame) Dest() MacAddress  { return f.Header.Dest() }
func (f QosNullFrame) BSSID() *MacAddress { return f.Header.BSSID() }
