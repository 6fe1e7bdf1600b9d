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

// UnknownElementPolicy decides what happens when a start tag matches no
// candidate child of the currently open element.
type UnknownElementPolicy int

const (
	// RejectUnknown fails the parse with an UnknownElementError.
	// This is the default.
	RejectUnknown UnknownElementPolicy = iota

	// SkipUnknown discards the entire unknown subtree and continues
	// scanning siblings.  Useful for feeds carrying extension
	// elements outside the OSM v0.6 vocabulary.
	SkipUnknown
)

// decoderOptions provides optional configuration parameters for Decoder construction.
type decoderOptions struct {
	unknown UnknownElementPolicy
}

// DecoderOption configures how we set up the decoder.
type DecoderOption func(*decoderOptions)

// WithUnknownElements sets the policy applied to unrecognized child
// elements.
func WithUnknownElements(policy UnknownElementPolicy) DecoderOption {
	return func(o *decoderOptions) {
		o.unknown = policy
	}
}

// defaultDecoderConfig provides a default configuration for decoders.
var defaultDecoderConfig = decoderOptions{
	unknown: RejectUnknown,
}
