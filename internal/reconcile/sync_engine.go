// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sync-hub/models"
)

const (
	// RelayAddress is the dynamic relay pool listen address.
	RelayAddress = "dynamic+https://relays.syncthing.net/endpoint"

	// DefaultFolderPath is where new folders land inside the container.
	DefaultFolderPath = "/data/"

	defaultListenAddress = "default"
	multicastGroup       = "[ff12::8384]"
	enabled              = "true"
)

// ListenAddresses returns the listen addresses every sync-engine instance
// must have, in the order they are appended.
func ListenAddresses(ports models.Ports) []string {
	return []string{
		fmt.Sprintf("tcp://0.0.0.0:%d", ports.TCP),
		fmt.Sprintf("quic://0.0.0.0:%d", ports.UDP),
		RelayAddress,
	}
}

// LocalAnnounceMCAddr returns the IPv6 multicast announce address for the
// discovery port.
func LocalAnnounceMCAddr(discoveryPort int) string {
	return fmt.Sprintf("%s:%d", multicastGroup, discoveryPort)
}

// SyncEngineConfig reconciles a sync-engine config.xml for the user with the
// given index. Settings it does not enforce, including unknown elements and
// attributes, are carried over verbatim.
func SyncEngineConfig(doc []byte, index int) (models.ReconcileResult, error) {
	var cfg syncConfiguration
	if err := xml.Unmarshal(doc, &cfg); err != nil {
		return models.ReconcileResult{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	ports := models.PortsForIndex(index)

	if cfg.Options == nil {
		cfg.Options = &syncOptions{}
	}
	if cfg.Defaults == nil {
		cfg.Defaults = &syncDefaults{}
	}

	var reasons []string
	reasons = append(reasons, cfg.Options.ensureListenAddresses(ListenAddresses(ports))...)
	reasons = append(reasons, cfg.Options.ensureLocalAnnounce(ports.Discovery)...)
	reasons = append(reasons, cfg.Defaults.ensureFolderPath()...)
	reasons = append(reasons, cfg.Defaults.ensureAutoAccept()...)

	if len(reasons) == 0 {
		return models.ReconcileResult{}, nil
	}

	out, err := xml.MarshalIndent(&cfg, "", "    ")
	if err != nil {
		return models.ReconcileResult{}, fmt.Errorf("encode config: %w", err)
	}

	return models.ReconcileResult{
		Updated:  true,
		Reasons:  reasons,
		Document: append([]byte(xml.Header), out...),
	}, nil
}

// syncConfiguration is the <configuration> root. Only <options> and
// <defaults> are interpreted.
type syncConfiguration struct {
	XMLName  xml.Name      `xml:"configuration"`
	Attrs    []xml.Attr    `xml:",any,attr"`
	Rest     []rawElement  `xml:",any"`
	Options  *syncOptions  `xml:"options"`
	Defaults *syncDefaults `xml:"defaults"`
}

type syncOptions struct {
	Attrs               []xml.Attr   `xml:",any,attr"`
	ListenAddresses     []string     `xml:"listenAddress"`
	LocalAnnouncePort   *string      `xml:"localAnnouncePort"`
	LocalAnnounceMCAddr *string      `xml:"localAnnounceMCAddr"`
	Rest                []rawElement `xml:",any"`
}

type syncDefaults struct {
	Attrs  []xml.Attr         `xml:",any,attr"`
	Folder *syncDefaultFolder `xml:"folder"`
	Device *syncDefaultDevice `xml:"device"`
	Rest   []rawElement       `xml:",any"`
}

type syncDefaultFolder struct {
	Path  string     `xml:"path,attr"`
	Attrs []xml.Attr `xml:",any,attr"`
	Inner string     `xml:",innerxml"`
}

// syncDefaultDevice accepts auto-accept both as a child element (what the
// sync engine writes) and as an attribute.
type syncDefaultDevice struct {
	AutoAcceptAttr *string      `xml:"autoAcceptFolders,attr"`
	Attrs          []xml.Attr   `xml:",any,attr"`
	AutoAccept     *string      `xml:"autoAcceptFolders"`
	Rest           []rawElement `xml:",any"`
}

// rawElement round-trips an element it does not understand.
type rawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// ensureListenAddresses appends the required addresses. A lone "default"
// entry is replaced; comma-joined entries are split. Entries are never
// removed otherwise.
func (o *syncOptions) ensureListenAddresses(required []string) []string {
	switch {
	case len(o.ListenAddresses) == 0:
		o.ListenAddresses = slices.Clone(required)
		return []string{"Set initial listen addresses"}
	case len(o.ListenAddresses) == 1 && strings.TrimSpace(o.ListenAddresses[0]) == defaultListenAddress:
		o.ListenAddresses = slices.Clone(required)
		return []string{"Updated default listen addresses"}
	}

	var current []string
	commaSeparated := false
	for _, entry := range o.ListenAddresses {
		if strings.Contains(entry, ",") {
			commaSeparated = true
		}
		for _, addr := range strings.Split(entry, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				current = append(current, addr)
			}
		}
	}

	var reasons []string
	for _, addr := range required {
		if !slices.Contains(current, addr) {
			current = append(current, addr)
			reasons = append(reasons, fmt.Sprintf("Listening address %s added", addr))
		}
	}
	if len(reasons) == 0 {
		return nil
	}

	o.ListenAddresses = current
	if commaSeparated {
		reasons = append(reasons, "Updated listen addresses from comma-separated string")
	}

	return reasons
}

func (o *syncOptions) ensureLocalAnnounce(discoveryPort int) []string {
	var reasons []string

	port := strconv.Itoa(discoveryPort)
	if o.LocalAnnouncePort == nil || strings.TrimSpace(*o.LocalAnnouncePort) != port {
		o.LocalAnnouncePort = &port
		reasons = append(reasons, fmt.Sprintf("Local announce port set to %d", discoveryPort))
	}

	mcAddr := LocalAnnounceMCAddr(discoveryPort)
	if o.LocalAnnounceMCAddr == nil || strings.TrimSpace(*o.LocalAnnounceMCAddr) != mcAddr {
		o.LocalAnnounceMCAddr = &mcAddr
		reasons = append(reasons, "Local announce multicast address set to "+mcAddr)
	}

	return reasons
}

func (d *syncDefaults) ensureFolderPath() []string {
	if d.Folder == nil {
		d.Folder = &syncDefaultFolder{}
	}
	if d.Folder.Path == DefaultFolderPath {
		return nil
	}

	d.Folder.Path = DefaultFolderPath
	return []string{"Default folder path set to " + DefaultFolderPath}
}

func (d *syncDefaults) ensureAutoAccept() []string {
	if d.Device == nil {
		d.Device = &syncDefaultDevice{}
	}

	changed := false
	if d.Device.AutoAccept == nil || strings.TrimSpace(*d.Device.AutoAccept) != enabled {
		d.Device.AutoAccept = ptr(enabled)
		changed = true
	}
	if d.Device.AutoAcceptAttr != nil && *d.Device.AutoAcceptAttr != enabled {
		d.Device.AutoAcceptAttr = ptr(enabled)
		changed = true
	}

	if !changed {
		return nil
	}
	return []string{"Auto-accept folders enabled"}
}

func ptr[T any](v T) *T {
	return &v
}
