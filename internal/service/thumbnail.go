package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/msomdec/photoshare/internal/domain"
)

// dataURIDelimiter separates the encoding marker from the payload in the
// "data:image/png;base64,...." strings the frontend uploads.
const dataURIDelimiter = ";base64,"

// ThumbnailDeriver produces fixed-size thumbnails from data-URI encoded
// images. It is a pure transform: decode, resize to exact target dimensions
// (aspect ratio is not preserved), re-encode, reattach the original marker.
type ThumbnailDeriver struct {
	width  int
	height int
}

// NewThumbnailDeriver creates a deriver with the given target dimensions.
func NewThumbnailDeriver(width, height int) *ThumbnailDeriver {
	return &ThumbnailDeriver{width: width, height: height}
}

// Derive returns the thumbnail as a data URI carrying the same marker as the
// input. Unreadable input fails with domain.ErrDecode.
func (d *ThumbnailDeriver) Derive(dataURI string) (string, error) {
	marker, payload, found := strings.Cut(dataURI, dataURIDelimiter)
	if !found {
		return "", fmt.Errorf("%w: missing base64 data URI marker", domain.ErrDecode)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	resized := imaging.Resize(img, d.width, d.height, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, resized, formatForMarker(marker)); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	return marker + dataURIDelimiter + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// formatForMarker picks the output encoding matching a "data:image/..."
// marker. Markers without a matching encoder fall back to JPEG; the marker
// itself is always preserved verbatim on the output.
func formatForMarker(marker string) imaging.Format {
	subtype := marker[strings.LastIndex(marker, "/")+1:]
	format, err := imaging.FormatFromExtension(subtype)
	if err != nil {
		return imaging.JPEG
	}
	return format
}
