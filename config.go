// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// DecodeOptions configures Decode's entry point beyond the FCS flag
// exposed in its signature. The zero value is the default behavior:
// no FCS, soft-fail IE handling.
type DecodeOptions struct {
	// FCSPresent strips the trailing 4-byte frame check sequence before
	// decoding, matching Decode's fcsPresent parameter.
	FCSPresent bool

	// Strict turns a non-empty trailing remainder left by the IE walker
	// (StationInfo.TrailingBytes) into a hard Failure. It does not change
	// how individual IE sub-parsers fail: a malformed optional IE is still
	// recorded as a nil field.
	Strict bool
}

// DecodeWithOptions is Decode with the strict-mode toggle applied after
// a normal decode: any StationInfo-bearing variant whose IE walker
// stopped on a non-empty trailing remainder is turned into a Failure,
// rather than silently discarding it as padding.
func DecodeWithOptions(octets []byte, opts DecodeOptions) (Frame, error) {
	f, err := Decode(octets, opts.FCSPresent)
	if err != nil || !opts.Strict {
		return f, err
	}
	if info := stationInfoOf(f); info != nil && len(info.TrailingBytes) > 0 {
		return Frame{}, newFailure("strict mode: unconsumed trailing bytes after information elements", info.TrailingBytes)
	}
	return f, nil
}

func stationInfoOf(f Frame) *StationInfo {
	switch f.Kind {
	case FrameKindBeacon:
		return &f.Beacon.StationInfo
	case FrameKindProbeRequest:
		return &f.ProbeRequest.StationInfo
	case FrameKindProbeResponse:
		return &f.ProbeResponse.StationInfo
	case FrameKindAssociationRequest:
		return &f.AssociationRequest.StationInfo
	case FrameKindAssociationResponse:
		return &f.AssociationResponse.StationInfo
	case FrameKindReassociationRequest:
		return &f.ReassociationRequest.StationInfo
	case FrameKindReassociationResponse:
		return &f.ReassociationResponse.StationInfo
	case FrameKindAuthentication:
		return &f.Authentication.StationInfo
	default:
		return nil
	}
}
