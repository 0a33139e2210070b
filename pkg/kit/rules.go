package kit

import (
	"net/http"
	"strings"
)

// Redirect sends the client to Destination when the request path matches
// Source. Permanent redirects use 308 and temporary ones 307, matching
// the codes file-based frameworks emit for declarative redirect tables.
type Redirect struct {
	Source      string
	Destination string
	Permanent   bool
}

// Rewrite serves Destination's handler under Source's URL without telling
// the client.
type Rewrite struct {
	Source      string
	Destination string
}

// HeaderRule sets response headers on every request whose path matches
// Source.
type HeaderRule struct {
	Source string
	Set    map[string]string
}

// Rules is a declarative routing table applied ahead of dispatch: headers,
// then redirects, then rewrites. A Source is an exact path or a "/prefix/*"
// pattern; a Destination ending in "/*" receives the matched remainder.
type Rules struct {
	Redirects []Redirect
	Rewrites  []Rewrite
	Headers   []HeaderRule
}

func (rs Rules) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, h := range rs.Headers {
			if _, ok := matchPattern(h.Source, r.URL.Path); ok {
				for k, v := range h.Set {
					w.Header().Set(k, v)
				}
			}
		}

		for _, rd := range rs.Redirects {
			rest, ok := matchPattern(rd.Source, r.URL.Path)
			if !ok {
				continue
			}

			status := http.StatusTemporaryRedirect
			if rd.Permanent {
				status = http.StatusPermanentRedirect
			}

			dest := expandDestination(rd.Destination, rest)
			if q := r.URL.RawQuery; q != "" {
				sep := "?"
				if strings.Contains(dest, "?") {
					sep = "&"
				}
				dest += sep + q
			}
			http.Redirect(w, r, dest, status)
			return
		}

		for _, rw := range rs.Rewrites {
			rest, ok := matchPattern(rw.Source, r.URL.Path)
			if !ok {
				continue
			}

			r2 := r.Clone(r.Context())
			r2.URL.Path = expandDestination(rw.Destination, rest)
			r2.URL.RawPath = ""
			next.ServeHTTP(w, r2)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// matchPattern reports whether path matches pattern. A pattern ending in
// "/*" prefix-matches and yields the remainder; anything else must match
// exactly.
func matchPattern(pattern, path string) (rest string, ok bool) {
	if strings.HasSuffix(pattern, "/*") {
		base := strings.TrimSuffix(pattern, "/*")
		if base == "" {
			return strings.TrimPrefix(path, "/"), true
		}
		if path == base {
			return "", true
		}
		if strings.HasPrefix(path, base+"/") {
			return path[len(base)+1:], true
		}
		return "", false
	}

	if path == pattern {
		return "", true
	}
	return "", false
}

func expandDestination(dest, rest string) string {
	if !strings.HasSuffix(dest, "/*") {
		return dest
	}

	base := strings.TrimSuffix(dest, "/*")
	if rest == "" {
		return base
	}
	return base + "/" + rest
}
