// Copyright 2026 Blink Labs Software
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

package cbor

import (
	"fmt"
	"strings"
)

// DumpCborStructure generates an indented string representing an arbitrary
// decoded CBOR value for debugging purposes
func DumpCborStructure(data any, prefix string) string {
	var ret strings.Builder
	switch v := data.(type) {
	case int, uint, int8, uint8, int16, uint16, int32, uint32, int64, uint64:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, v, v)
	case float32, float64:
		return fmt.Sprintf("%s%g,\n", prefix, v)
	case string:
		return fmt.Sprintf("%s%q,\n", prefix, v)
	case []byte:
		return fmt.Sprintf("%s<bytes> (length %d),\n", prefix, len(v))
	case []any:
		ret.WriteString(prefix + "[\n")
		newPrefix := nestedPrefix(prefix)
		for _, val := range v {
			ret.WriteString(DumpCborStructure(val, newPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case map[any]any:
		ret.WriteString(prefix + "{\n")
		newPrefix := nestedPrefix(prefix)
		for key, val := range v {
			fmt.Fprintf(&ret, "%s%#v => %#v,\n", newPrefix, key, val)
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}

// nestedPrefix adds 2 spaces to prefix. A user supplied prefix that does not
// start with a space is only used for the outermost line
func nestedPrefix(prefix string) string {
	if len(prefix) > 1 && prefix[0] != ' ' {
		prefix = ""
	}
	return "  " + prefix
}
