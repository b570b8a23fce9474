package scrapapi

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/multierr"

	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
)

// buildPhotoUpload validates the file and assembles the multipart body.
// Both checks happen before any network I/O: an oversized or non-image file
// never leaves the process. The field name is the target photo slot.
func (c *Client) buildPhotoUpload(field, filename string, file io.Reader) ([]byte, string, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if file == nil {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "file content is required")
	}

	// Read one byte past the cap so oversize is detected without
	// buffering an unbounded stream.
	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadBytes+1))
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read photo file")
	}

	var violations error
	if int64(len(data)) > c.maxUploadBytes {
		violations = multierr.Append(violations, fmt.Errorf("file exceeds %dMB limit", c.maxUploadBytes>>20))
	}
	if len(data) == 0 {
		violations = multierr.Append(violations, fmt.Errorf("file is empty"))
	} else if detected := mimetype.Detect(data); !strings.HasPrefix(detected.String(), "image/") {
		violations = multierr.Append(violations, fmt.Errorf("%s is not an image", detected.String()))
	}
	if violations != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, violations, "photo rejected")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, path.Base(filename))
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write multipart body")
	}
	if err := writer.Close(); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finish multipart body")
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}
