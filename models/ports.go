// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Base ports of the per-user allocation scheme. A user with index i gets
// base+i for every service.
const (
	BaseWebPort         = 8384
	BaseSyncPort        = 22000
	BaseDiscoveryPort   = 21027
	BaseFileBrowserPort = 8334
)

// Container-side ports of the web UIs.
const (
	SyncWebContainerPort     = 8384
	FileBrowserContainerPort = 8334
)

// Ports is the set of host ports allocated to one user.
type Ports struct {
	// Web is the sync-engine UI/API port, bound to loopback only.
	Web int
	// TCP and UDP carry the sync protocol; they share the same number.
	TCP int
	UDP int
	// Discovery is the local-announce (LAN discovery) UDP port.
	Discovery int
	// FileBrowser is the file-browser UI port, bound to loopback only.
	FileBrowser int
}

// PortsForIndex returns the deterministic port allocation for index.
func PortsForIndex(index int) Ports {
	return Ports{
		Web:         BaseWebPort + index,
		TCP:         BaseSyncPort + index,
		UDP:         BaseSyncPort + index,
		Discovery:   BaseDiscoveryPort + index,
		FileBrowser: BaseFileBrowserPort + index,
	}
}
