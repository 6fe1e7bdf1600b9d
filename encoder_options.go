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

package naqsha

// encoderOptions provides optional configuration parameters for Encoder construction.
type encoderOptions struct {
	writingProgram string
	indent         string
}

// EncoderOption configures how we set up the encoder.
type EncoderOption func(*encoderOptions)

// WithWritingProgram sets the generator attribute of the osm element.
func WithWritingProgram(program string) EncoderOption {
	return func(o *encoderOptions) {
		o.writingProgram = program
	}
}

// WithIndent pretty-prints the markup, indenting nested elements by the
// given string.  The default is compact output.
func WithIndent(indent string) EncoderOption {
	return func(o *encoderOptions) {
		o.indent = indent
	}
}

// defaultEncoderConfig provides a default configuration for encoders.
var defaultEncoderConfig = encoderOptions{
	writingProgram: DefaultWritingProgram,
}
