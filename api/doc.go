// Package api defines the contracts and error model shared across byteringbuffer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package api
