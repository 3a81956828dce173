package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// signResponse buffers the response and sets the HashSHA256 header to the
// HMAC of the body. Without a signer it is a pass-through.
func (h *Handler) signResponse(next http.Handler) http.Handler {
	if h.signer == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{header: make(http.Header), status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.buf.Bytes()
		for k, v := range bw.header {
			w.Header()[k] = v
		}
		w.Header().Set(utils.HashHeader, h.signer.SumHex(body))
		w.WriteHeader(bw.status)

		if _, err := w.Write(body); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.signResponse").Msg("failed to write signed response")
		}
	})
}

// bufferedResponseWriter holds the whole response until it can be signed.
type bufferedResponseWriter struct {
	header      http.Header
	buf         bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *bufferedResponseWriter) Header() http.Header {
	return w.header
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.buf.Write(b)
}
