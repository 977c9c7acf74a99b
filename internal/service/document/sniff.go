package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/h2non/filetype"
)

// sniffLen is the header size filetype needs to recognize every type it knows.
const sniffLen = 261

const defaultContentType = "application/octet-stream"

// sniff reads the head of body and resolves the content type. Magic bytes
// win over the declared type, which wins over the file extension. The
// returned reader yields the full original content.
func sniff(body io.Reader, declared, fileName string) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	full := io.MultiReader(bytes.NewReader(head), body)

	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value, full, nil
	}
	if declared != "" && declared != defaultContentType {
		return declared, full, nil
	}
	if byExt := mime.TypeByExtension(filepath.Ext(fileName)); byExt != "" {
		return byExt, full, nil
	}
	return defaultContentType, full, nil
}
