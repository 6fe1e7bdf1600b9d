// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// NewReader wraps rdr with transparent decompression, sniffing the
// compression format from the leading magic bytes.  Streams that match
// no known format pass through unchanged.
func NewReader(rdr io.Reader) (io.Reader, error) {
	buf := bufio.NewReader(rdr)

	// a short read here just means a tiny input; let it pass through
	magic, _ := buf.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return gzip.NewReader(buf)

	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(buf)
		if err != nil {
			return nil, err
		}

		return zr.IOReadCloser(), nil

	case bytes.HasPrefix(magic, lz4Magic):
		return lz4.NewReader(buf), nil

	case bytes.HasPrefix(magic, xzMagic):
		return xz.NewReader(buf)

	default:
		return buf, nil
	}
}
