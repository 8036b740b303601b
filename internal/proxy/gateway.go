// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

const forwardedBy = "go-sync-hub"

// SessionParser resolves a raw session token into the caller's identity.
type SessionParser interface {
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// Gateway forwards requests of one backend family to the caller's own
// instance. Routing needs nothing but the session token: the index it
// carries determines the upstream port.
type Gateway struct {
	backend  Backend
	sessions SessionParser

	upstreamHost string
	loginPath    string
	errorPath    string

	// maxBufferedBody limits buffered request bodies; zero means no limit.
	maxBufferedBody int64

	transport http.RoundTripper
	logger    *logger.Logger
}

// NewGateway creates a Gateway for backend.
func NewGateway(backend Backend, sessions SessionParser, cfg config.Gateway, logger *logger.Logger) *Gateway {
	return &Gateway{
		backend:         backend,
		sessions:        sessions,
		upstreamHost:    cfg.UpstreamHost,
		loginPath:       cfg.LoginPath,
		errorPath:       cfg.ErrorPath,
		maxBufferedBody: cfg.MaxBufferedBody,
		transport: &timedTransport{
			next:    http.DefaultTransport.(*http.Transport).Clone(),
			backend: backend.Name,
		},
		logger: logger,
	}
}

// Backend returns the backend family served by g.
func (g *Gateway) Backend() Backend {
	return g.backend
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := g.sessions.ParseSession(r.Context(), utils.SessionToken(r))
	if err != nil {
		requestsTotal.WithLabelValues(g.backend.Name, outcomeUnauthenticated).Inc()
		redirect(w, g.loginPath, http.StatusFound)
		return
	}

	if r.URL.Path == g.backend.Prefix {
		requestsTotal.WithLabelValues(g.backend.Name, outcomeRedirected).Inc()
		target := url.URL{Path: g.backend.Prefix + "/", RawQuery: r.URL.RawQuery, Fragment: r.URL.Fragment}
		redirect(w, target.String(), http.StatusPermanentRedirect)
		return
	}

	if g.backend.BufferRequestBody {
		if r, err = g.bufferBody(w, r); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				requestsTotal.WithLabelValues(g.backend.Name, outcomeBodyTooLarge).Inc()
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Str("backend", g.backend.Name).Msg("reading request body failed")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	target := net.JoinHostPort(g.upstreamHost, strconv.Itoa(g.backend.Port(session.Index)))

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			g.rewrite(pr, target)
		},
		Transport:      g.transport,
		FlushInterval:  -1,
		ModifyResponse: g.modifyResponse,
		ErrorHandler:   g.handleError(session, target),
	}

	rp.ServeHTTP(w, r)
}

// bufferBody replaces the request body with an in-memory copy.
func (g *Gateway) bufferBody(w http.ResponseWriter, r *http.Request) (*http.Request, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return r, nil
	}

	var body io.Reader = r.Body
	if g.maxBufferedBody > 0 {
		body = http.MaxBytesReader(w, r.Body, g.maxBufferedBody)
	}

	buf, err := io.ReadAll(body)
	if err != nil {
		return r, err
	}

	r = r.Clone(r.Context())
	r.Body = io.NopCloser(bytes.NewReader(buf))
	r.ContentLength = int64(len(buf))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	return r, nil
}

func (g *Gateway) rewrite(pr *httputil.ProxyRequest, target string) {
	escaped := g.upstreamPath(pr.In.URL.EscapedPath())
	path, err := url.PathUnescape(escaped)
	if err != nil {
		path, escaped = g.upstreamPath(pr.In.URL.Path), ""
	}

	pr.Out.URL.Scheme = "http"
	pr.Out.URL.Host = target
	pr.Out.URL.Path = path
	pr.Out.URL.RawPath = escaped

	if g.backend.ForwardedHeaders {
		g.setForwardedHeaders(pr)
	}
}

// upstreamPath maps a gateway path to the backend path.
func (g *Gateway) upstreamPath(p string) string {
	if g.backend.StripPrefix {
		p = strings.TrimPrefix(p, g.backend.Prefix)
		if p == "" {
			p = "/"
		}
	}

	// QR code paths are generated with a trailing slash the backend needs.
	if g.backend.TrimTrailingSlash && len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasPrefix(p, "/qr/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func (g *Gateway) setForwardedHeaders(pr *httputil.ProxyRequest) {
	in, out := pr.In, pr.Out

	out.Header["X-Forwarded-For"] = in.Header["X-Forwarded-For"]
	pr.SetXForwarded()
	if proto := in.Header.Get("X-Forwarded-Proto"); proto != "" {
		out.Header.Set("X-Forwarded-Proto", proto)
	}

	realIP := in.Header.Get("X-Real-IP")
	if realIP == "" {
		realIP = clientIP(in.RemoteAddr)
	}
	out.Header.Set("X-Real-IP", realIP)
	out.Header.Set("X-Forwarded-By", forwardedBy)
	out.Header.Set("X-Forwarded-Prefix", g.backend.Prefix)
}

func (g *Gateway) modifyResponse(resp *http.Response) error {
	requestsTotal.WithLabelValues(g.backend.Name, outcomeForwarded).Inc()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotModified {
		resp.Body.Close()
		resp.Body = http.NoBody
	}

	if g.backend.RewriteRedirects && isTemporaryRedirect(resp.StatusCode) {
		if location, ok := g.prefixLocation(resp.Header.Get("Location")); ok {
			resp.Header.Set("Location", location)
		}
	}
	return nil
}

// prefixLocation adds the gateway prefix to a same-origin absolute-path
// redirect target. Query and fragment are kept.
func (g *Gateway) prefixLocation(location string) (string, bool) {
	if !strings.HasPrefix(location, "/") || strings.HasPrefix(location, "//") {
		return "", false
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", false
	}
	if u.Path == g.backend.Prefix || strings.HasPrefix(u.Path, g.backend.Prefix+"/") {
		return "", false
	}

	u.Path = g.backend.Prefix + u.Path
	if u.RawPath != "" {
		u.RawPath = g.backend.Prefix + u.RawPath
	}
	return u.String(), true
}

func (g *Gateway) handleError(session models.Session, target string) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log := logger.FromRequest(r)

		if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
			log.Debug().Str("backend", g.backend.Name).Msg("client went away")
			return
		}

		requestsTotal.WithLabelValues(g.backend.Name, outcomeUpstreamError).Inc()
		log.Error().
			Err(fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)).
			Str("func", "*Gateway.handleError").
			Str("backend", g.backend.Name).
			Str("username", session.Username).
			Int("index", session.Index).
			Str("upstream", target).
			Msg("proxy request failed")

		msg := fmt.Sprintf(
			"Proxy Error.\n%s\nIs the %s instance started? Is there incorrect data saved in the session cookie?",
			err.Error(), g.backend.Name,
		)
		redirect(w, g.errorPath+"?msg="+url.QueryEscape(msg), http.StatusFound)
	}
}

func isTemporaryRedirect(status int) bool {
	switch status {
	case http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
		return true
	}
	return false
}

func redirect(w http.ResponseWriter, location string, status int) {
	w.Header().Set("Location", location)
	w.WriteHeader(status)
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// timedTransport records how long upstreams take to answer.
type timedTransport struct {
	next    http.RoundTripper
	backend string
}

func (t *timedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	upstreamDuration.WithLabelValues(t.backend).Observe(time.Since(start).Seconds())
	return resp, err
}
