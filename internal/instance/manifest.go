package instance

import (
	"fmt"

	"github.com/MKhiriev/go-sync-hub/models"
	"gopkg.in/yaml.v3"
)

const (
	syncServiceName        = "syncthing"
	fileBrowserServiceName = "filestash"

	restartPolicy   = "unless-stopped"
	containerUser   = "1000:1000"
	fileBrowserBase = "/filestash"
)

// ManifestOptions are the global settings that shape every manifest.
type ManifestOptions struct {
	SyncImage         string
	FileBrowserImage  string
	EnableFileBrowser bool
}

type composeManifest struct {
	Services composeServices `yaml:"services"`
}

// composeServices is a struct rather than a map so the sync engine always
// comes first.
type composeServices struct {
	Sync        composeService  `yaml:"syncthing"`
	FileBrowser *composeService `yaml:"filestash,omitempty"`
}

type composeService struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	User          string   `yaml:"user,omitempty"`
	Environment   []string `yaml:"environment,omitempty"`
	Volumes       []string `yaml:"volumes,omitempty"`
	Ports         []string `yaml:"ports,omitempty"`
	Restart       string   `yaml:"restart,omitempty"`
}

// BuildManifest renders the orchestration manifest for username. The web
// UIs are bound to loopback; the sync and discovery ports are public.
func BuildManifest(layout Layout, username string, index int, opts ManifestOptions) ([]byte, error) {
	ports := models.PortsForIndex(index)
	ext := layout.ExternalUserDir(username)

	manifest := composeManifest{
		Services: composeServices{
			Sync: composeService{
				Image:         opts.SyncImage,
				ContainerName: syncServiceName + "_" + username,
				Environment:   []string{"PUID=1000", "PGID=1000", "TZ=Etc/UTC"},
				Volumes: []string{
					ext + "/" + syncConfigDirName + ":/var/syncthing/config",
					ext + "/" + dataDirName + ":/data",
				},
				Ports: []string{
					fmt.Sprintf("127.0.0.1:%d:%d", ports.Web, models.SyncWebContainerPort),
					fmt.Sprintf("%d:%d/tcp", ports.TCP, ports.TCP),
					fmt.Sprintf("%d:%d/udp", ports.UDP, ports.UDP),
					fmt.Sprintf("%d:%d/udp", ports.Discovery, ports.Discovery),
				},
				Restart: restartPolicy,
			},
		},
	}

	if opts.EnableFileBrowser {
		manifest.Services.FileBrowser = &composeService{
			Image:         opts.FileBrowserImage,
			ContainerName: fileBrowserServiceName + "_" + username,
			User:          containerUser,
			Environment:   []string{"APPLICATION_URL=", "CANARY=true", "FILESTASH_BASE=" + fileBrowserBase},
			Volumes: []string{
				ext + "/" + fileBrowserDirName + ":/app/data/state/",
				ext + "/" + dataDirName + ":/app/userdata",
			},
			Ports:   []string{fmt.Sprintf("127.0.0.1:%d:%d", ports.FileBrowser, models.FileBrowserContainerPort)},
			Restart: restartPolicy,
		}
	}

	out, err := yaml.Marshal(&manifest)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return out, nil
}
