package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently decodes gzip request bodies and compresses
// responses for clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasGzip(r.Header.Get("Content-Encoding")) {
			if err := decodeGzipBody(r); err != nil {
				writeError(w, r, ErrReadingRequestBody)
				return
			}
		}

		if !hasGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		defer gzipWriters.Put(zw)
		zw.Reset(w)

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(gw, r)
		gw.finish()
	})
}

func hasGzip(header string) bool {
	return strings.Contains(header, "gzip")
}

// decodeGzipBody swaps r.Body for a decompressing reader. The length of the
// decoded body is unknown, so ContentLength is reset.
func decodeGzipBody(r *http.Request) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &pooledGzipBody{Reader: zr, src: r.Body}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

type pooledGzipBody struct {
	*gzip.Reader
	src io.Closer
}

func (b *pooledGzipBody) Close() error {
	_ = b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.src.Close()
}

// gzipResponseWriter holds the status back until the first body byte, so
// header-only responses go out without Content-Encoding.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	status     int
	compressed bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	if !w.compressed {
		w.compressed = true
		h := w.Header()
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)
	}
	return w.zw.Write(p)
}

func (w *gzipResponseWriter) finish() {
	switch {
	case w.compressed:
		_ = w.zw.Close()
	case w.status != 0:
		w.ResponseWriter.WriteHeader(w.status)
	}
}
