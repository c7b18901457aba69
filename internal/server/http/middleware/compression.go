package middleware

import (
	"compress/gzip"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

const invalidGzipMessage = "Invalid gzip body"

// InflateRequestBody swaps a gzip encoded request body for its decoded stream.
// It is meant for gzip.WithDecompressFn: the gzip middleware calls it for
// requests announcing a gzip Content-Encoding and then runs the chain itself.
func InflateRequestBody(c *gin.Context) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return
	}

	reader, err := gzip.NewReader(c.Request.Body)
	if err != nil {
		// the 400 is written uncompressed, so keep the gzip middleware from wrapping it
		c.Request.Header.Del("Accept-Encoding")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, invalidGzipMessage))
		return
	}

	c.Request.Body = reader
	c.Request.Header.Del("Content-Encoding")
	c.Request.Header.Del("Content-Length")
	c.Request.ContentLength = -1
}
