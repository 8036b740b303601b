package reconcile

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSyncConfig = `<?xml version="1.0"?>
<configuration version="51">
  <device id="ABCDEF" name="test-device" compression="metadata" introducer="false" skipIntroductionRemovals="false" introducedBy="">
    <address>dynamic</address>
    <paused>false</paused>
    <autoAcceptFolders>false</autoAcceptFolders>
  </device>
  <gui tls="false" sendBasicAuthPrompt="false">
    <address>0.0.0.0:8384</address>
    <metricsWithoutAuth>false</metricsWithoutAuth>
    <apikey>testapikey</apikey>
    <theme>default</theme>
  </gui>
  <options>
    <listenAddress>default</listenAddress>
    <globalAnnounceServer>default</globalAnnounceServer>
    <globalAnnounceEnabled>true</globalAnnounceEnabled>
    <localAnnounceEnabled>true</localAnnounceEnabled>
    <localAnnouncePort>21030</localAnnouncePort>
    <localAnnounceMCAddr>[ff12::8384]:21030</localAnnounceMCAddr>
  </options>
  <defaults>
    <folder path="/data/" type="sendreceive">
      <filesystemType>basic</filesystemType>
    </folder>
    <device autoAcceptFolders="false" />
  </defaults>
</configuration>`

const sampleIndex = 3

func reparse(t *testing.T, doc []byte) syncConfiguration {
	t.Helper()

	var cfg syncConfiguration
	require.NoError(t, xml.Unmarshal(doc, &cfg))
	return cfg
}

func TestListenAddresses(t *testing.T) {
	assert.Equal(t, []string{
		"tcp://0.0.0.0:22003",
		"quic://0.0.0.0:22003",
		RelayAddress,
	}, ListenAddresses(models.PortsForIndex(3)))
}

func TestLocalAnnounceMCAddr(t *testing.T) {
	assert.Equal(t, "[ff12::8384]:21030", LocalAnnounceMCAddr(21030))
}

func TestSyncEngineConfig_DefaultListenAddress(t *testing.T) {
	res, err := SyncEngineConfig([]byte(sampleSyncConfig), sampleIndex)
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, []string{"Updated default listen addresses", "Auto-accept folders enabled"}, res.Reasons)

	cfg := reparse(t, res.Document)
	require.NotNil(t, cfg.Options)
	assert.Equal(t, ListenAddresses(models.PortsForIndex(sampleIndex)), cfg.Options.ListenAddresses)
	assert.Equal(t, "21030", *cfg.Options.LocalAnnouncePort)
	assert.Equal(t, "[ff12::8384]:21030", *cfg.Options.LocalAnnounceMCAddr)
	assert.Equal(t, DefaultFolderPath, cfg.Defaults.Folder.Path)
	assert.Equal(t, "true", *cfg.Defaults.Device.AutoAccept)
	assert.Equal(t, "true", *cfg.Defaults.Device.AutoAcceptAttr)

	assert.True(t, strings.HasPrefix(string(res.Document), xml.Header))
}

func TestSyncEngineConfig_Idempotent(t *testing.T) {
	first, err := SyncEngineConfig([]byte(sampleSyncConfig), sampleIndex)
	require.NoError(t, err)
	require.True(t, first.Updated)

	second, err := SyncEngineConfig(first.Document, sampleIndex)
	require.NoError(t, err)

	assert.False(t, second.Updated)
	assert.Empty(t, second.Reasons)
	assert.Nil(t, second.Document)
}

func TestSyncEngineConfig_PreservesUnrelatedSettings(t *testing.T) {
	res, err := SyncEngineConfig([]byte(sampleSyncConfig), sampleIndex)
	require.NoError(t, err)

	out := string(res.Document)
	assert.Contains(t, out, "<apikey>testapikey</apikey>")
	assert.Contains(t, out, "<theme>default</theme>")
	assert.Contains(t, out, "<globalAnnounceServer>default</globalAnnounceServer>")
	assert.Contains(t, out, `<configuration version="51">`)
	assert.Contains(t, out, `type="sendreceive"`)
	assert.Contains(t, out, "<filesystemType>basic</filesystemType>")
	assert.Contains(t, out, `sendBasicAuthPrompt="false"`)
}

func TestSyncEngineConfig_TopLevelDeviceUntouched(t *testing.T) {
	res, err := SyncEngineConfig([]byte(sampleSyncConfig), sampleIndex)
	require.NoError(t, err)

	cfg := reparse(t, res.Document)

	var device *rawElement
	for i := range cfg.Rest {
		if cfg.Rest[i].XMLName.Local == "device" {
			device = &cfg.Rest[i]
		}
	}
	require.NotNil(t, device)
	assert.Contains(t, device.Inner, "<autoAcceptFolders>false</autoAcceptFolders>")
}

func TestSyncEngineConfig_ListenAddressVariants(t *testing.T) {
	tests := []struct {
		name        string
		replacement string
		wantReasons []string
	}{
		{
			name:        "comma separated",
			replacement: "<listenAddress>tcp://0.0.0.0:22003,quic://0.0.0.0:22003</listenAddress>",
			wantReasons: []string{
				"Listening address " + RelayAddress + " added",
				"Updated listen addresses from comma-separated string",
			},
		},
		{
			name: "multiple entries",
			replacement: "<listenAddress>tcp://0.0.0.0:22003</listenAddress>\n" +
				"    <listenAddress>quic://0.0.0.0:22003</listenAddress>",
			wantReasons: []string{"Listening address " + RelayAddress + " added"},
		},
		{
			name:        "custom address kept",
			replacement: "<listenAddress>tcp://192.168.1.10:22003</listenAddress>",
			wantReasons: []string{
				"Listening address tcp://0.0.0.0:22003 added",
				"Listening address quic://0.0.0.0:22003 added",
				"Listening address " + RelayAddress + " added",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(sampleSyncConfig, "<listenAddress>default</listenAddress>", tt.replacement, 1)

			res, err := SyncEngineConfig([]byte(doc), sampleIndex)
			require.NoError(t, err)
			require.True(t, res.Updated)

			assert.Equal(t, append(tt.wantReasons, "Auto-accept folders enabled"), res.Reasons)

			cfg := reparse(t, res.Document)
			for _, addr := range ListenAddresses(models.PortsForIndex(sampleIndex)) {
				assert.Contains(t, cfg.Options.ListenAddresses, addr)
			}
			for _, addr := range cfg.Options.ListenAddresses {
				assert.NotContains(t, addr, ",")
			}
		})
	}
}

func TestSyncEngineConfig_CustomAddressNotRemoved(t *testing.T) {
	doc := strings.Replace(sampleSyncConfig,
		"<listenAddress>default</listenAddress>",
		"<listenAddress>tcp://192.168.1.10:22003</listenAddress>", 1)

	res, err := SyncEngineConfig([]byte(doc), sampleIndex)
	require.NoError(t, err)

	cfg := reparse(t, res.Document)
	assert.Equal(t, "tcp://192.168.1.10:22003", cfg.Options.ListenAddresses[0])
	assert.Len(t, cfg.Options.ListenAddresses, 4)
}

func TestSyncEngineConfig_WrongAnnouncePortAndFolder(t *testing.T) {
	doc := strings.NewReplacer(
		"<localAnnouncePort>21030</localAnnouncePort>", "<localAnnouncePort>21027</localAnnouncePort>",
		"<localAnnounceMCAddr>[ff12::8384]:21030</localAnnounceMCAddr>", "<localAnnounceMCAddr>[ff12::8384]:21027</localAnnounceMCAddr>",
		`path="/data/"`, `path="~"`,
	).Replace(sampleSyncConfig)

	res, err := SyncEngineConfig([]byte(doc), sampleIndex)
	require.NoError(t, err)

	assert.Contains(t, res.Reasons, "Local announce port set to 21030")
	assert.Contains(t, res.Reasons, "Local announce multicast address set to [ff12::8384]:21030")
	assert.Contains(t, res.Reasons, "Default folder path set to /data/")

	cfg := reparse(t, res.Document)
	assert.Equal(t, "21030", *cfg.Options.LocalAnnouncePort)
	assert.Equal(t, DefaultFolderPath, cfg.Defaults.Folder.Path)
}

func TestSyncEngineConfig_MissingSections(t *testing.T) {
	res, err := SyncEngineConfig([]byte(`<configuration version="51"><gui><apikey>k</apikey></gui></configuration>`), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Set initial listen addresses",
		"Local announce port set to 21027",
		"Local announce multicast address set to [ff12::8384]:21027",
		"Default folder path set to /data/",
		"Auto-accept folders enabled",
	}, res.Reasons)

	cfg := reparse(t, res.Document)
	assert.Equal(t, ListenAddresses(models.PortsForIndex(0)), cfg.Options.ListenAddresses)
	assert.Equal(t, "true", *cfg.Defaults.Device.AutoAccept)
	assert.Nil(t, cfg.Defaults.Device.AutoAcceptAttr)
	assert.Contains(t, string(res.Document), "<apikey>k</apikey>")

	again, err := SyncEngineConfig(res.Document, 0)
	require.NoError(t, err)
	assert.False(t, again.Updated)
}

func TestSyncEngineConfig_Malformed(t *testing.T) {
	for _, doc := range []string{
		"",
		"<configuration><options>",
		"<other/>",
		"not xml at all",
	} {
		_, err := SyncEngineConfig([]byte(doc), sampleIndex)
		assert.ErrorIs(t, err, ErrMalformedDocument, "doc %q", doc)
	}
}
