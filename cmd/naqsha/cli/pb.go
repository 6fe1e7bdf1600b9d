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
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressReader is a reader with an associated ProgressBar tracking
// the compressed bytes consumed from the underlying file.  Closing it
// clears the terminal line of progress output.
type progressReader struct {
	r   io.Reader
	bar *pb.ProgressBar
}

// WrapInputFile prepares f for document streaming: regular files get a
// progress bar tracking bytes read relative to the file size, and any
// recognized compression is transparently undone on top of it.  Stdin
// is decompressed but never wrapped with progress output.
func WrapInputFile(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		rdr, err := NewReader(os.Stdin)
		if err != nil {
			return nil, err
		}

		return io.NopCloser(rdr), nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New(int(fi.Size())).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = os.Stderr
	bar.Start()

	// sniff above the proxy so the bar measures compressed progress
	rdr, err := NewReader(bar.NewProxyReader(f))
	if err != nil {
		return nil, err
	}

	return progressReader{
		r:   rdr,
		bar: bar,
	}, nil
}

// Read implements io.Reader.Read by simple delegation.
func (p progressReader) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

// Close finishes the progress bar and clears its terminal line.
func (p progressReader) Close() error {

	// make sure newline is not printed by Finish()
	p.bar.Output = nil
	p.bar.NotPrint = true

	p.bar.Finish()

	fmt.Fprintf(os.Stderr, "\033[2K\r") // clear status bar

	if c, ok := p.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
