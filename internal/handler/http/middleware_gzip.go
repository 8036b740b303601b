package http

import (
	"net/http"
	"sync"

	"github.com/klauspost/compress/gzhttp"
)

// gzipMinSize keeps short answers like {"ok":true} uncompressed.
const gzipMinSize = 512

var apiCompression = sync.OnceValue(func() func(http.Handler) http.HandlerFunc {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(gzipMinSize),
		gzhttp.ContentTypes([]string{"application/json"}),
		gzhttp.AllowCompressedRequests(true),
	)
	if err != nil {
		panic(err)
	}
	return wrap
})

// withGZip compresses JSON API responses for clients that accept gzip and
// decodes gzip request bodies. It is only mounted on the API; proxied
// backends negotiate their own encoding.
func withGZip(next http.Handler) http.Handler {
	return apiCompression()(next)
}
