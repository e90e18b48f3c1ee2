package portal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func Sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func ParseClientIP(r *http.Request) string {
	// prefer X-Forwarded-For if present

	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		// take first IP
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

// ReadWithSizeLimit reads from an io.Reader with a size limit to guard against
// oversized payloads. The default size limit is 5MB.
func ReadWithSizeLimit(reader io.Reader, maxSize ...int64) ([]byte, error) {
	if reader == nil {
		return nil, io.ErrUnexpectedEOF
	}

	const defaultMaxSize int64 = 5 * 1024 * 1024 // 5MB

	limit := defaultMaxSize
	if len(maxSize) > 0 && maxSize[0] > 0 {
		limit = maxSize[0]
	}

	limitedReader := &io.LimitedReader{R: reader, N: limit + 1}
	data, err := io.ReadAll(limitedReader)

	if int64(len(data)) > limit || err != nil {
		return nil, fmt.Errorf("read exceeds size limit: %d, error: %w", limit, err)
	}

	return data, nil
}
