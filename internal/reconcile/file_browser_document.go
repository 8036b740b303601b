package reconcile

import "encoding/json"

// fileBrowserConfig is the typed view of config.json. Each level that the
// file-browser may extend keeps its unknown keys in extra.
type fileBrowserConfig struct {
	General     *fileBrowserGeneral
	Connections []fileBrowserConnection
	Middleware  *fileBrowserMiddleware
	Features    *fileBrowserFeatures

	extra jsonObject
}

type fileBrowserGeneral struct {
	SecretKey       string
	UploadChunkSize *float64

	extra jsonObject
}

type fileBrowserConnection struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type fileBrowserMiddleware struct {
	IdentityProvider *fileBrowserIdentityProvider
	AttributeMapping *fileBrowserAttributeMapping

	extra jsonObject
}

type fileBrowserIdentityProvider struct {
	Type   string `json:"type"`
	Params string `json:"params,omitempty"`
}

type fileBrowserAttributeMapping struct {
	RelatedBackend string `json:"related_backend"`
	Params         string `json:"params,omitempty"`
}

type fileBrowserFeatures struct {
	Share *fileBrowserShare

	extra jsonObject
}

type fileBrowserShare struct {
	Enable *bool

	extra jsonObject
}

func (c *fileBrowserConfig) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	if err := obj.take("general", &c.General); err != nil {
		return err
	}
	if err := obj.take("connections", &c.Connections); err != nil {
		return err
	}
	if err := obj.take("middleware", &c.Middleware); err != nil {
		return err
	}
	if err := obj.take("features", &c.Features); err != nil {
		return err
	}

	c.extra = obj
	return nil
}

func (c fileBrowserConfig) MarshalJSON() ([]byte, error) {
	return c.extra.marshalWith(
		jsonField{key: "general", value: c.General, present: c.General != nil},
		jsonField{key: "connections", value: c.Connections, present: c.Connections != nil},
		jsonField{key: "middleware", value: c.Middleware, present: c.Middleware != nil},
		jsonField{key: "features", value: c.Features, present: c.Features != nil},
	)
}

func (g *fileBrowserGeneral) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	if err := obj.take("secret_key", &g.SecretKey); err != nil {
		return err
	}
	if err := obj.take("upload_chunk_size", &g.UploadChunkSize); err != nil {
		return err
	}

	g.extra = obj
	return nil
}

func (g fileBrowserGeneral) MarshalJSON() ([]byte, error) {
	return g.extra.marshalWith(
		jsonField{key: "secret_key", value: g.SecretKey, present: g.SecretKey != ""},
		jsonField{key: "upload_chunk_size", value: g.UploadChunkSize, present: g.UploadChunkSize != nil},
	)
}

func (m *fileBrowserMiddleware) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	if err := obj.take("identity_provider", &m.IdentityProvider); err != nil {
		return err
	}
	if err := obj.take("attribute_mapping", &m.AttributeMapping); err != nil {
		return err
	}

	m.extra = obj
	return nil
}

func (m fileBrowserMiddleware) MarshalJSON() ([]byte, error) {
	return m.extra.marshalWith(
		jsonField{key: "identity_provider", value: m.IdentityProvider, present: m.IdentityProvider != nil},
		jsonField{key: "attribute_mapping", value: m.AttributeMapping, present: m.AttributeMapping != nil},
	)
}

func (f *fileBrowserFeatures) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	if err := obj.take("share", &f.Share); err != nil {
		return err
	}

	f.extra = obj
	return nil
}

func (f fileBrowserFeatures) MarshalJSON() ([]byte, error) {
	return f.extra.marshalWith(
		jsonField{key: "share", value: f.Share, present: f.Share != nil},
	)
}

func (s *fileBrowserShare) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	if err := obj.take("enable", &s.Enable); err != nil {
		return err
	}

	s.extra = obj
	return nil
}

func (s fileBrowserShare) MarshalJSON() ([]byte, error) {
	return s.extra.marshalWith(
		jsonField{key: "enable", value: s.Enable, present: s.Enable != nil},
	)
}

var (
	_ json.Marshaler   = fileBrowserConfig{}
	_ json.Unmarshaler = (*fileBrowserConfig)(nil)
)
