// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Command dot11mon captures 802.11 MAC-layer frames off a monitor-mode
// device, strips the RadioTap header, and logs the decoded frame. It is
// a thin driver around the dot11 package — capture and radiotap
// stripping are explicitly out of the core library's scope.
package main

import (
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/0x9ef/dot11"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML defaults file")
	strict := flag.Bool("strict", false, "treat unconsumed bytes after the information elements as a decode failure")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dot11mon: loading config: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.Device = flag.Arg(0)
	}
	if *strict {
		cfg.Strict = true
	}
	if *debug {
		cfg.Debug = true
	}
	if cfg.Device == "" {
		fmt.Fprintln(os.Stderr, "dot11mon: usage: dot11mon [flags] <device>")
		os.Exit(2)
	}

	log := dot11.NewLogger(cfg.Debug)
	if err := run(log, cfg); err != nil {
		log.Error().Err(err).Msg("dot11mon: fatal")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, cfg config) error {
	handle, err := openCapture(cfg.Device)
	if err != nil {
		return errors.Wrap(err, "opening capture device")
	}
	defer handle.Close()

	opts := dot11.DecodeOptions{Strict: cfg.Strict}
	for {
		data, _, err := handle.ReadPacketData()
		if err != nil {
			return errors.Wrap(err, "reading packet")
		}
		handlePacket(log, data, opts)
	}
}

// openCapture opens the named device and pins its datalink type to
// DLT_IEEE802_11_RADIO (127), matching the RadioTap framing every
// monitor-mode 802.11 capture uses. It does not switch the device into
// monitor mode; the device must already be in it.
func openCapture(device string) (*pcap.Handle, error) {
	inactive, err := pcap.NewInactiveHandle(device)
	if err != nil {
		return nil, err
	}
	defer inactive.CleanUp()

	if err := inactive.SetImmediateMode(true); err != nil {
		return nil, err
	}
	handle, err := inactive.Activate()
	if err != nil {
		return nil, err
	}
	if err := handle.SetLinkType(layers.LinkTypeIEEE802_11Radio); err != nil {
		handle.Close()
		return nil, err
	}
	return handle, nil
}

func handlePacket(log zerolog.Logger, data []byte, opts dot11.DecodeOptions) {
	var radiotap layers.RadioTap
	if err := radiotap.DecodeFromBytes(data, gopacket.NilDecodeFeedback); err != nil {
		log.Debug().Err(err).Msg("couldn't read radiotap header")
		return
	}
	payload := data[radiotap.Length:]

	frame, err := dot11.DecodeWithOptions(payload, opts)
	if err != nil {
		var unhandled *dot11.UnhandledFrameSubtypeError
		if errors.As(err, &unhandled) {
			log.Debug().Str("type", unhandled.FrameControl.Type.String()).Msg("unhandled frame subtype")
			return
		}
		log.Warn().Err(err).Msg("failed to parse frame")
		return
	}

	event := log.Info().Str("kind", fmt.Sprintf("%d", frame.Kind)).Str("dest", frame.Dest().String())
	if src := frame.Src(); src != nil {
		event = event.Str("src", src.String())
	}
	if bssid := frame.BSSID(); bssid != nil {
		event = event.Str("bssid", bssid.String())
	}
	event.Msg("frame")
}
