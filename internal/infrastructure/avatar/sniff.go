package avatar

import (
	"bytes"
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// sniffLen covers the signatures of every accepted image format.
const sniffLen = 3072

var allowedTypes = []string{"image/png", "image/jpeg", "image/webp"}

// ErrUnsupportedFormat is returned for content that is not an accepted image.
var ErrUnsupportedFormat = entity.NewBadRequestError("File Format Not Supported!")

// sniff detects the content type of body from its leading bytes and returns
// a reader that replays the whole content.
func sniff(body io.Reader) (*mimetype.MIME, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return nil, nil, ErrUnsupportedFormat
	}
	return mtype, io.MultiReader(bytes.NewReader(head), body), nil
}
