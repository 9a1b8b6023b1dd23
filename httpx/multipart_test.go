package httpx

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamMultipartDeliversPartsInOrder(t *testing.T) {
	raw := "" +
		"--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n" +
		"Content-Type: text/plain\r\n\r\n" +
		"hello\r\n" +
		"--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"note\"\r\n\r\n" +
		"world\r\n" +
		"--XYZ--\r\n"

	r := bufio.NewReader(strings.NewReader(raw))
	var names []string
	var bodies []string
	err := StreamMultipart(r, "XYZ", func(h PartHeader, body io.Reader) error {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(body); err != nil {
			return err
		}
		names = append(names, h.Name)
		bodies = append(bodies, buf.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"file", "note"}, names)
	assert.Equal(t, []string{"hello", "world"}, bodies)
}
