package readcounts

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
)

// Zlib streams start with 0x78 and a flag byte that depends on the
// compression level. "x^" (0x78 0x5e) is left out since it is also plausible
// plain text.
var byteCodeSigs = map[DataType][][]byte{
	DataTypeGzip:  {{0x1f, 0x8b, 0x08}},
	DataTypeZip:   {{0x50, 0x4b, 0x03, 0x04}},
	DataTypeXZ:    {{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	DataTypeZlib:  {{0x78, 0x01}, {0x78, 0x9c}, {0x78, 0xda}},
	DataTypeBZip2: {{0x42, 0x5a, 0x68}},
}

// DetectDataType attempts to detect the data type of a stream from its first
// few bytes by checking against a set of known signatures. Byte code
// signatures from https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
	for dt, sigs := range byteCodeSigs {
		for _, sig := range sigs {
			if bytes.HasPrefix(head, sig) {
				return dt
			}
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompress peeks at the start of r and, if it looks compressed, wraps
// it in the matching decompressor. Closing the returned reader does not close
// r.
func MaybeDecompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	// Short inputs are fine: Peek returns what it has along with io.EOF.
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch DetectDataType(head) {
	case DataTypeGzip:
		return gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)

		// Count tables are expected to be the first entry in the archive
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return &readCloserFaker{zr}, nil
	case DataTypeBZip2:
		return &readCloserFaker{bzip2.NewReader(br)}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(br, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case DataTypeZlib:
		return zlib.NewReader(br)
	}

	return &readCloserFaker{br}, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
