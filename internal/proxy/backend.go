package proxy

import "github.com/MKhiriev/go-sync-hub/models"

// Backend describes one family of per-user upstreams and how requests to it
// are rewritten.
type Backend struct {
	// Name appears in metrics, logs and the error page message.
	Name string

	// Prefix is the path the gateway is mounted on, without trailing slash.
	Prefix string

	// BasePort plus the session index is the upstream port.
	BasePort int

	// StripPrefix removes Prefix before forwarding.
	StripPrefix bool

	// TrimTrailingSlash drops a trailing slash from the forwarded path,
	// except for "/" and paths under /qr/.
	TrimTrailingSlash bool

	// ForwardedHeaders sets X-Real-IP and the X-Forwarded-* family.
	ForwardedHeaders bool

	// BufferRequestBody reads the whole request body before forwarding.
	BufferRequestBody bool

	// RewriteRedirects prefixes same-origin Location headers of temporary
	// redirects with Prefix.
	RewriteRedirects bool
}

// SyncEngineBackend is the sync-engine web UI and REST API. Its payloads are
// small JSON documents, so request bodies are buffered.
func SyncEngineBackend() Backend {
	return Backend{
		Name:              "syncthing",
		Prefix:            "/syncthing",
		BasePort:          models.BaseWebPort,
		StripPrefix:       true,
		TrimTrailingSlash: true,
		ForwardedHeaders:  true,
		BufferRequestBody: true,
	}
}

// FileBrowserBackend is the file-browser UI. The backend runs under the
// same base path, so the prefix is kept and bodies are streamed.
func FileBrowserBackend() Backend {
	return Backend{
		Name:             "filestash",
		Prefix:           "/filestash",
		BasePort:         models.BaseFileBrowserPort,
		RewriteRedirects: true,
	}
}

// Port returns the upstream port of the user with index.
func (b Backend) Port(index int) int {
	return b.BasePort + index
}
