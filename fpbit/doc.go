// Copyright 2026 go-fpbit Authors
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

// Package fpbit reports the IEEE-754 sign bit of floating-point values.
//
// The sign bit is read from the bit representation, not derived from an
// ordering comparison, so negative zero and negatively-signed NaNs are
// reported as negative. A naive x < 0 check gets both wrong.
//
// The implementation is selected at build time. By default Signbit is a
// pass-through to the runtime primitive (math.Signbit). Building with
// -tags fpbit_portable compiles a self-contained fallback built on the
// copy-sign primitive instead; the fallback has identical semantics and
// exists for toolchains where the native primitive is unavailable or
// untrusted. There is no runtime branch in either mode. Impl reports
// which mode the binary carries.
package fpbit
