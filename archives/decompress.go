package archives

import (
	"bufio"
	"fmt"
	"io"

	gzip "github.com/klauspost/pgzip"
)

// gzip magic bytes
var gzipMagic = []byte{0x1f, 0x8b}

// decompressed sniffs the stream and wraps it in a parallel gzip reader when
// it is compressed, passing it through untouched otherwise.
func decompressed(r io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(r)

	magic, err := buffered.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing stream: %w", err)
	}

	if len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return gz, nil
	}

	return buffered, nil
}
